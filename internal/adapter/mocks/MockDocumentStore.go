package mocks

import (
	model "github.com/mouse-blink/jsoned/internal/model"
	
	mock "github.com/stretchr/testify/mock"
)

// MockDocumentStore is a mock type for the DocumentStore type.
type MockDocumentStore struct {
	mock.Mock
}

type MockDocumentStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDocumentStore) EXPECT() *MockDocumentStore_Expecter {
	return &MockDocumentStore_Expecter{mock: &_m.Mock}
}

// Exists provides a mock function with given fields: path
func (_m *MockDocumentStore) Exists(path model.FilePath) (bool, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for Exists")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(model.FilePath) (bool, error)); ok {
		return rf(path)
	}

	if rf, ok := ret.Get(0).(func(model.FilePath) bool); ok {
		r0 = rf(path)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(model.FilePath) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDocumentStore_Exists_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Exists'.
type MockDocumentStore_Exists_Call struct {
	*mock.Call
}

// Exists is a helper method to define mock.On call
//   - path model.FilePath
func (_e *MockDocumentStore_Expecter) Exists(path interface{}) *MockDocumentStore_Exists_Call {
	return &MockDocumentStore_Exists_Call{Call: _e.mock.On("Exists", path)}
}

func (_c *MockDocumentStore_Exists_Call) Run(run func(path model.FilePath)) *MockDocumentStore_Exists_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.FilePath))
	})

	return _c
}

func (_c *MockDocumentStore_Exists_Call) Return(_a0 bool, _a1 error) *MockDocumentStore_Exists_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockDocumentStore_Exists_Call) RunAndReturn(run func(model.FilePath) (bool, error)) *MockDocumentStore_Exists_Call {
	_c.Call.Return(run)

	return _c
}

// Load provides a mock function with given fields: path
func (_m *MockDocumentStore) Load(path model.FilePath) (*model.Value, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 *model.Value
	var r1 error
	if rf, ok := ret.Get(0).(func(model.FilePath) (*model.Value, error)); ok {
		return rf(path)
	}

	if rf, ok := ret.Get(0).(func(model.FilePath) *model.Value); ok {
		r0 = rf(path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Value)
		}
	}

	if rf, ok := ret.Get(1).(func(model.FilePath) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDocumentStore_Load_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Load'.
type MockDocumentStore_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call
//   - path model.FilePath
func (_e *MockDocumentStore_Expecter) Load(path interface{}) *MockDocumentStore_Load_Call {
	return &MockDocumentStore_Load_Call{Call: _e.mock.On("Load", path)}
}

func (_c *MockDocumentStore_Load_Call) Run(run func(path model.FilePath)) *MockDocumentStore_Load_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.FilePath))
	})

	return _c
}

func (_c *MockDocumentStore_Load_Call) Return(_a0 *model.Value, _a1 error) *MockDocumentStore_Load_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockDocumentStore_Load_Call) RunAndReturn(run func(model.FilePath) (*model.Value, error)) *MockDocumentStore_Load_Call {
	_c.Call.Return(run)

	return _c
}

// Save provides a mock function with given fields: path, doc
func (_m *MockDocumentStore) Save(path model.FilePath, doc *model.Value) error {
	ret := _m.Called(path, doc)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(model.FilePath, *model.Value) error); ok {
		r0 = rf(path, doc)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDocumentStore_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'.
type MockDocumentStore_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - path model.FilePath
//   - doc *model.Value
func (_e *MockDocumentStore_Expecter) Save(path interface{}, doc interface{}) *MockDocumentStore_Save_Call {
	return &MockDocumentStore_Save_Call{Call: _e.mock.On("Save", path, doc)}
}

func (_c *MockDocumentStore_Save_Call) Run(run func(path model.FilePath, doc *model.Value)) *MockDocumentStore_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.FilePath), args[1].(*model.Value))
	})

	return _c
}

func (_c *MockDocumentStore_Save_Call) Return(_a0 error) *MockDocumentStore_Save_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockDocumentStore_Save_Call) RunAndReturn(run func(model.FilePath, *model.Value) error) *MockDocumentStore_Save_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockDocumentStore creates a new instance of MockDocumentStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDocumentStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentStore {
	m := &MockDocumentStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
