package mocks

import (
	controller "github.com/mouse-blink/jsoned/internal/controller"
	
	model "github.com/mouse-blink/jsoned/internal/model"
	
	mock "github.com/stretchr/testify/mock"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

type MockUI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// DisplayStatus provides a mock function with given fields: message, err
func (_m *MockUI) DisplayStatus(message string, err error) {
	_m.Called(message, err)
}

// MockUI_DisplayStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayStatus'.
type MockUI_DisplayStatus_Call struct {
	*mock.Call
}

// DisplayStatus is a helper method to define mock.On call
//   - message string
//   - err error
func (_e *MockUI_Expecter) DisplayStatus(message interface{}, err interface{}) *MockUI_DisplayStatus_Call {
	return &MockUI_DisplayStatus_Call{Call: _e.mock.On("DisplayStatus", message, err)}
}

func (_c *MockUI_DisplayStatus_Call) Run(run func(message string, err error)) *MockUI_DisplayStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(error))
	})

	return _c
}

func (_c *MockUI_DisplayStatus_Call) Return() *MockUI_DisplayStatus_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_DisplayStatus_Call) RunAndReturn(run func(string, error)) *MockUI_DisplayStatus_Call {
	_c.Run(run)

	return _c
}

// DisplayTree provides a mock function with given fields: file, doc
func (_m *MockUI) DisplayTree(file model.File, doc *model.Value) error {
	ret := _m.Called(file, doc)

	if len(ret) == 0 {
		panic("no return value specified for DisplayTree")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(model.File, *model.Value) error); ok {
		r0 = rf(file, doc)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayTree_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayTree'.
type MockUI_DisplayTree_Call struct {
	*mock.Call
}

// DisplayTree is a helper method to define mock.On call
//   - file model.File
//   - doc *model.Value
func (_e *MockUI_Expecter) DisplayTree(file interface{}, doc interface{}) *MockUI_DisplayTree_Call {
	return &MockUI_DisplayTree_Call{Call: _e.mock.On("DisplayTree", file, doc)}
}

func (_c *MockUI_DisplayTree_Call) Run(run func(file model.File, doc *model.Value)) *MockUI_DisplayTree_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.File), args[1].(*model.Value))
	})

	return _c
}

func (_c *MockUI_DisplayTree_Call) Return(_a0 error) *MockUI_DisplayTree_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_DisplayTree_Call) RunAndReturn(run func(model.File, *model.Value) error) *MockUI_DisplayTree_Call {
	_c.Call.Return(run)

	return _c
}

// DisplayValue provides a mock function with given fields: path, value, found
func (_m *MockUI) DisplayValue(path string, value *model.Value, found bool) error {
	ret := _m.Called(path, value, found)

	if len(ret) == 0 {
		panic("no return value specified for DisplayValue")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, *model.Value, bool) error); ok {
		r0 = rf(path, value, found)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayValue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayValue'.
type MockUI_DisplayValue_Call struct {
	*mock.Call
}

// DisplayValue is a helper method to define mock.On call
//   - path string
//   - value *model.Value
//   - found bool
func (_e *MockUI_Expecter) DisplayValue(path interface{}, value interface{}, found interface{}) *MockUI_DisplayValue_Call {
	return &MockUI_DisplayValue_Call{Call: _e.mock.On("DisplayValue", path, value, found)}
}

func (_c *MockUI_DisplayValue_Call) Run(run func(path string, value *model.Value, found bool)) *MockUI_DisplayValue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(*model.Value), args[2].(bool))
	})

	return _c
}

func (_c *MockUI_DisplayValue_Call) Return(_a0 error) *MockUI_DisplayValue_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_DisplayValue_Call) RunAndReturn(run func(string, *model.Value, bool) error) *MockUI_DisplayValue_Call {
	_c.Call.Return(run)

	return _c
}

// Start provides a mock function with given fields: options
func (_m *MockUI) Start(options ...controller.StartOption) error {
	_va := make([]interface{}, len(options))
	for _i := range options {
		_va[_i] = options[_i]
	}

	var _ca []interface{}
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(...controller.StartOption) error); ok {
		r0 = rf(options...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_Start_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Start'.
type MockUI_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
//   - options ...controller.StartOption
func (_e *MockUI_Expecter) Start(options ...interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start", append([]interface{}{}, options...)...)}
}

func (_c *MockUI_Start_Call) Run(run func(options ...controller.StartOption)) *MockUI_Start_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]controller.StartOption, len(args)-0)
		for i, a := range args[0:] {
			if a != nil {
				variadicArgs[i] = a.(controller.StartOption)
			}
		}
		run(variadicArgs...)
	})

	return _c
}

func (_c *MockUI_Start_Call) Return(_a0 error) *MockUI_Start_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_Start_Call) RunAndReturn(run func(...controller.StartOption) error) *MockUI_Start_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
