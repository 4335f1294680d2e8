package prodex

import (
	"context"

	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/prodex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/prodex/internal/usecase/search"
)

type mockSearchUC struct {
	searchFn    func(ctx context.Context, req request.Request) ([]result.Result, error)
	recommendFn func(ctx context.Context, productID int64, count int) ([]product.Product, error)
	productFn   func(ctx context.Context, id int64, count int) (searchuc.Detail, error)
	productsFn  func(ctx context.Context) ([]product.Product, error)
	reloadFn    func(ctx context.Context) error
}

func (m *mockSearchUC) Search(ctx context.Context, req request.Request) ([]result.Result, error) {
	return m.searchFn(ctx, req)
}

func (m *mockSearchUC) Recommend(ctx context.Context, productID int64, count int) ([]product.Product, error) {
	return m.recommendFn(ctx, productID, count)
}

func (m *mockSearchUC) Product(ctx context.Context, id int64, count int) (searchuc.Detail, error) {
	return m.productFn(ctx, id, count)
}

func (m *mockSearchUC) Products(ctx context.Context) ([]product.Product, error) {
	return m.productsFn(ctx)
}

func (m *mockSearchUC) Reload(ctx context.Context) error {
	return m.reloadFn(ctx)
}

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }
