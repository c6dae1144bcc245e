// Package mocks provides test doubles for the tavily client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	tavily "github.com/sells-group/npd-cli/pkg/tavily"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Search provides a mock function with given fields: ctx, query, opts
func (_m *MockClient) Search(ctx context.Context, query string, opts ...tavily.SearchOption) (*tavily.SearchResponse, error) {
	ret := _m.Called(ctx, query, opts)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 *tavily.SearchResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, ...tavily.SearchOption) (*tavily.SearchResponse, error)); ok {
		return rf(ctx, query, opts...)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*tavily.SearchResponse)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockClient creates a new instance of MockClient. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
