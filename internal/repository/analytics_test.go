package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildFilteredOrdersQuery_NoFilter(t *testing.T) {
	sort := domain.Sort{Column: "orders.id", Descending: false}
	query, args := buildFilteredOrdersQuery(domain.OrderFilter{}, sort, domain.Page{Limit: 50})

	assert.NotContains(t, query, "JOIN")
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY orders.id ASC")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{50, 0}, args)
}

func TestBuildFilteredOrdersQuery_BrandAndMinCost(t *testing.T) {
	minCost := decimal.RequireFromString("100")
	filter := domain.OrderFilter{
		Brand:   ptr("Toyota"),
		MinCost: &minCost,
	}
	sort := domain.Sort{Column: "orders.cost", Descending: true}

	query, args := buildFilteredOrdersQuery(filter, sort, domain.Page{Limit: 10, Offset: 20})

	assert.Contains(t, query, "JOIN cars ON orders.car_id = cars.id")
	assert.NotContains(t, query, "JOIN mechanics")
	assert.Contains(t, query, "cars.brand = $1")
	assert.Contains(t, query, "orders.cost >= $2")
	assert.Contains(t, query, "ORDER BY orders.cost DESC")
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")

	require.Len(t, args, 4)
	assert.Equal(t, "Toyota", args[0])
	assert.Equal(t, 10, args[2])
	assert.Equal(t, 20, args[3])
}

func TestBuildFilteredOrdersQuery_EachJoinAtMostOnce(t *testing.T) {
	minCost := decimal.NewFromInt(1)
	maxCost := decimal.NewFromInt(9)
	filter := domain.OrderFilter{
		Brand:    ptr("Lada"),
		MinCost:  &minCost,
		MaxCost:  &maxCost,
		GradeGTE: ptr(4),
		Issue: domain.DateRange{
			From: ptr(date("2024-01-01")),
			To:   ptr(date("2024-12-31")),
		},
	}
	sort := domain.Sort{Column: "orders.issue_date", Descending: false}

	query, args := buildFilteredOrdersQuery(filter, sort, domain.Page{Limit: 50})

	assert.Equal(t, 1, strings.Count(query, "JOIN cars"))
	assert.Equal(t, 1, strings.Count(query, "JOIN mechanics"))
	assert.Contains(t, query, "mechanics.grade >= $4")
	assert.Contains(t, query, "orders.issue_date >= $5")
	assert.Contains(t, query, "orders.issue_date <= $6")
	assert.Equal(t, 5, strings.Count(query, " AND "), "six predicates joined by AND")
	assert.Len(t, args, 8)
}

func TestBuildOrderDetailsQuery(t *testing.T) {
	sort := domain.Sort{Column: "orders.id", Descending: true}
	issue := domain.DateRange{From: ptr(date("2024-06-01"))}

	query, args := buildOrderDetailsQuery(issue, sort, domain.Page{Limit: 25, Offset: 5})

	assert.Contains(t, query, "JOIN cars ON orders.car_id = cars.id")
	assert.Contains(t, query, "JOIN mechanics ON orders.mechanic_id = mechanics.id")
	assert.Contains(t, query, "orders.issue_date >= $1")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")
	assert.Len(t, args, 3)
}

func TestBuildRevenueQuery(t *testing.T) {
	query, args := buildRevenueQuery(domain.DateRange{}, domain.Sort{Descending: true}, domain.Page{Limit: 100})

	assert.Contains(t, query, "COALESCE(SUM(orders.cost), 0)::text")
	assert.Contains(t, query, "GROUP BY mechanics.id, mechanics.full_name")
	assert.Contains(t, query, "ORDER BY SUM(orders.cost) DESC")
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{100, 0}, args)

	asc, _ := buildRevenueQuery(domain.DateRange{}, domain.Sort{Descending: false}, domain.Page{Limit: 100})
	assert.Contains(t, asc, "ORDER BY SUM(orders.cost) ASC")
}

func TestBuildRevenueQuery_IssueRange(t *testing.T) {
	issue := domain.DateRange{
		From: ptr(date("2024-01-01")),
		To:   ptr(date("2024-06-30")),
	}

	query, args := buildRevenueQuery(issue, domain.Sort{Descending: true}, domain.Page{Limit: 100})

	assert.Contains(t, query, "WHERE orders.issue_date >= $1 AND orders.issue_date <= $2")
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")
	assert.Len(t, args, 4)
}
