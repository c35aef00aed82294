package mocks

import (
	domain "github.com/mouse-blink/jsoned/internal/domain"
	
	mock "github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: args
func (_m *MockWorkflow) Create(args domain.CreateArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.CreateArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'.
type MockWorkflow_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - args domain.CreateArgs
func (_e *MockWorkflow_Expecter) Create(args interface{}) *MockWorkflow_Create_Call {
	return &MockWorkflow_Create_Call{Call: _e.mock.On("Create", args)}
}

func (_c *MockWorkflow_Create_Call) Run(run func(args domain.CreateArgs)) *MockWorkflow_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.CreateArgs))
	})

	return _c
}

func (_c *MockWorkflow_Create_Call) Return(_a0 error) *MockWorkflow_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Create_Call) RunAndReturn(run func(domain.CreateArgs) error) *MockWorkflow_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: args
func (_m *MockWorkflow) Delete(args domain.DeleteArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.DeleteArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'.
type MockWorkflow_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - args domain.DeleteArgs
func (_e *MockWorkflow_Expecter) Delete(args interface{}) *MockWorkflow_Delete_Call {
	return &MockWorkflow_Delete_Call{Call: _e.mock.On("Delete", args)}
}

func (_c *MockWorkflow_Delete_Call) Run(run func(args domain.DeleteArgs)) *MockWorkflow_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.DeleteArgs))
	})

	return _c
}

func (_c *MockWorkflow_Delete_Call) Return(_a0 error) *MockWorkflow_Delete_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Delete_Call) RunAndReturn(run func(domain.DeleteArgs) error) *MockWorkflow_Delete_Call {
	_c.Call.Return(run)

	return _c
}

// Edit provides a mock function with given fields: args
func (_m *MockWorkflow) Edit(args domain.EditArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Edit")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.EditArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Edit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Edit'.
type MockWorkflow_Edit_Call struct {
	*mock.Call
}

// Edit is a helper method to define mock.On call
//   - args domain.EditArgs
func (_e *MockWorkflow_Expecter) Edit(args interface{}) *MockWorkflow_Edit_Call {
	return &MockWorkflow_Edit_Call{Call: _e.mock.On("Edit", args)}
}

func (_c *MockWorkflow_Edit_Call) Run(run func(args domain.EditArgs)) *MockWorkflow_Edit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.EditArgs))
	})

	return _c
}

func (_c *MockWorkflow_Edit_Call) Return(_a0 error) *MockWorkflow_Edit_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Edit_Call) RunAndReturn(run func(domain.EditArgs) error) *MockWorkflow_Edit_Call {
	_c.Call.Return(run)

	return _c
}

// Format provides a mock function with given fields: args
func (_m *MockWorkflow) Format(args domain.FormatArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Format")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.FormatArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Format_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Format'.
type MockWorkflow_Format_Call struct {
	*mock.Call
}

// Format is a helper method to define mock.On call
//   - args domain.FormatArgs
func (_e *MockWorkflow_Expecter) Format(args interface{}) *MockWorkflow_Format_Call {
	return &MockWorkflow_Format_Call{Call: _e.mock.On("Format", args)}
}

func (_c *MockWorkflow_Format_Call) Run(run func(args domain.FormatArgs)) *MockWorkflow_Format_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.FormatArgs))
	})

	return _c
}

func (_c *MockWorkflow_Format_Call) Return(_a0 error) *MockWorkflow_Format_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Format_Call) RunAndReturn(run func(domain.FormatArgs) error) *MockWorkflow_Format_Call {
	_c.Call.Return(run)

	return _c
}

// Get provides a mock function with given fields: args
func (_m *MockWorkflow) Get(args domain.GetArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.GetArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'.
type MockWorkflow_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - args domain.GetArgs
func (_e *MockWorkflow_Expecter) Get(args interface{}) *MockWorkflow_Get_Call {
	return &MockWorkflow_Get_Call{Call: _e.mock.On("Get", args)}
}

func (_c *MockWorkflow_Get_Call) Run(run func(args domain.GetArgs)) *MockWorkflow_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.GetArgs))
	})

	return _c
}

func (_c *MockWorkflow_Get_Call) Return(_a0 error) *MockWorkflow_Get_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Get_Call) RunAndReturn(run func(domain.GetArgs) error) *MockWorkflow_Get_Call {
	_c.Call.Return(run)

	return _c
}

// New provides a mock function with given fields: args
func (_m *MockWorkflow) New(args domain.NewArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for New")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.NewArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_New_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'New'.
type MockWorkflow_New_Call struct {
	*mock.Call
}

// New is a helper method to define mock.On call
//   - args domain.NewArgs
func (_e *MockWorkflow_Expecter) New(args interface{}) *MockWorkflow_New_Call {
	return &MockWorkflow_New_Call{Call: _e.mock.On("New", args)}
}

func (_c *MockWorkflow_New_Call) Run(run func(args domain.NewArgs)) *MockWorkflow_New_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.NewArgs))
	})

	return _c
}

func (_c *MockWorkflow_New_Call) Return(_a0 error) *MockWorkflow_New_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_New_Call) RunAndReturn(run func(domain.NewArgs) error) *MockWorkflow_New_Call {
	_c.Call.Return(run)

	return _c
}

// Set provides a mock function with given fields: args
func (_m *MockWorkflow) Set(args domain.SetArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.SetArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'.
type MockWorkflow_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - args domain.SetArgs
func (_e *MockWorkflow_Expecter) Set(args interface{}) *MockWorkflow_Set_Call {
	return &MockWorkflow_Set_Call{Call: _e.mock.On("Set", args)}
}

func (_c *MockWorkflow_Set_Call) Run(run func(args domain.SetArgs)) *MockWorkflow_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.SetArgs))
	})

	return _c
}

func (_c *MockWorkflow_Set_Call) Return(_a0 error) *MockWorkflow_Set_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Set_Call) RunAndReturn(run func(domain.SetArgs) error) *MockWorkflow_Set_Call {
	_c.Call.Return(run)

	return _c
}

// Tree provides a mock function with given fields: args
func (_m *MockWorkflow) Tree(args domain.TreeArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Tree")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.TreeArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Tree_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Tree'.
type MockWorkflow_Tree_Call struct {
	*mock.Call
}

// Tree is a helper method to define mock.On call
//   - args domain.TreeArgs
func (_e *MockWorkflow_Expecter) Tree(args interface{}) *MockWorkflow_Tree_Call {
	return &MockWorkflow_Tree_Call{Call: _e.mock.On("Tree", args)}
}

func (_c *MockWorkflow_Tree_Call) Run(run func(args domain.TreeArgs)) *MockWorkflow_Tree_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.TreeArgs))
	})

	return _c
}

func (_c *MockWorkflow_Tree_Call) Return(_a0 error) *MockWorkflow_Tree_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Tree_Call) RunAndReturn(run func(domain.TreeArgs) error) *MockWorkflow_Tree_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
