package handler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenchworks/autoservice/internal/validation"
)

func TestListQuery_Defaults(t *testing.T) {
	q := &ListQuery{}
	require.NoError(t, q.Validate())

	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, "id", q.SortBy)
	assert.Equal(t, "asc", q.SortDir)
}

func TestListQuery_Bounds(t *testing.T) {
	tooBig := &ListQuery{Limit: 201}
	assert.Error(t, tooBig.Validate())

	negativeOffset := &ListQuery{Offset: -1}
	assert.Error(t, negativeOffset.Validate())

	max := &ListQuery{Limit: 200}
	assert.NoError(t, max.Validate())
}

func TestRevenueQuery_Defaults(t *testing.T) {
	q := &RevenueQuery{}
	require.NoError(t, q.Validate())

	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, "desc", q.SortDir, "top earners first by default")

	tooBig := &RevenueQuery{Limit: 501}
	assert.Error(t, tooBig.Validate())
}

func TestSearchMetaQuery_PatternRequired(t *testing.T) {
	q := &SearchMetaQuery{}
	assert.Error(t, q.Validate())

	ok := &SearchMetaQuery{Pattern: "oil.*change"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 50, ok.Limit)
}

func TestCarCreateRequest_YearBounds(t *testing.T) {
	base := CarCreateRequest{
		Number:    "A123BC",
		Brand:     "Toyota",
		Year:      2020,
		OwnerName: "Ivanov",
	}
	require.NoError(t, base.Validate())

	old := base
	old.Year = 1899
	assert.Error(t, old.Validate())

	future := base
	future.Year = 2101
	assert.Error(t, future.Validate())
}

func TestCarCreateRequest_StringWidths(t *testing.T) {
	base := CarCreateRequest{
		Number:    "A123BC",
		Brand:     "Toyota",
		Year:      2020,
		OwnerName: "Ivanov",
	}

	atLimit := base
	atLimit.Brand = strings.Repeat("x", 64)
	atLimit.OwnerName = strings.Repeat("o", 128)
	require.NoError(t, atLimit.Validate())

	wideBrand := base
	wideBrand.Brand = strings.Repeat("x", 100)
	assert.Error(t, wideBrand.Validate(), "brand column holds 64 characters")

	wideOwner := base
	wideOwner.OwnerName = strings.Repeat("o", 129)
	assert.Error(t, wideOwner.Validate())
}

func TestMechanicCreateRequest_GradeBounds(t *testing.T) {
	base := MechanicCreateRequest{
		EmployeeNo:      "EMP-7",
		FullName:        "Petrov",
		ExperienceYears: 5,
		Grade:           10,
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.Grade = 11
	assert.Error(t, bad.Validate())

	veteran := base
	veteran.ExperienceYears = 81
	assert.Error(t, veteran.Validate())
}

func TestMechanicCreateRequest_FullNameWidth(t *testing.T) {
	base := MechanicCreateRequest{
		EmployeeNo: "EMP-7",
		FullName:   strings.Repeat("n", 128),
		Grade:      5,
	}
	require.NoError(t, base.Validate())

	wide := base
	wide.FullName = strings.Repeat("n", 129)
	assert.Error(t, wide.Validate())
}

func TestOrderCreateRequest_ParsesDates(t *testing.T) {
	req := &OrderCreateRequest{
		CarID:          1,
		MechanicID:     2,
		IssueDate:      "2024-03-01",
		WorkType:       "engine",
		PlannedEndDate: "2024-03-15",
	}
	require.NoError(t, req.Validate())

	assert.Equal(t, "2024-03-01", req.issueDate.Format("2006-01-02"))
	assert.Equal(t, "2024-03-15", req.plannedEndDate.Format("2006-01-02"))
	assert.Nil(t, req.actualEndDate)
}

func TestOrderCreateRequest_RejectsBadDates(t *testing.T) {
	req := &OrderCreateRequest{
		CarID:          1,
		MechanicID:     2,
		IssueDate:      "01.03.2024",
		WorkType:       "engine",
		PlannedEndDate: "2024-03-15",
	}
	err := req.Validate()
	require.Error(t, err)

	custom, ok := err.(validation.CustomValidationErrors)
	require.True(t, ok)
	require.Len(t, custom, 1)
	assert.Equal(t, "issue_date", custom[0].Field)
}

func TestOrderCreateRequest_RejectsNegativeCost(t *testing.T) {
	var req OrderCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"car_id": 1, "mechanic_id": 2, "cost": -10.5,
		"issue_date": "2024-03-01", "work_type": "engine",
		"planned_end_date": "2024-03-15"
	}`), &req))

	err := req.Validate()
	require.Error(t, err)
}

func TestOrderUpdateRequest_TriStateActualEndDate(t *testing.T) {
	var cleared OrderUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"actual_end_date": null}`), &cleared))
	cleared.ID = 1
	require.NoError(t, cleared.Validate())

	patch := cleared.patch()
	assert.True(t, patch.ActualEndDate.Set)
	assert.False(t, patch.ActualEndDate.Valid)

	var set OrderUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"actual_end_date": "2024-04-01"}`), &set))
	set.ID = 1
	require.NoError(t, set.Validate())

	patch = set.patch()
	assert.True(t, patch.ActualEndDate.Set)
	assert.True(t, patch.ActualEndDate.Valid)
	assert.Equal(t, "2024-04-01", patch.ActualEndDate.Value.Format("2006-01-02"))

	var absent OrderUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status": "done"}`), &absent))
	absent.ID = 1
	require.NoError(t, absent.Validate())

	patch = absent.patch()
	assert.False(t, patch.ActualEndDate.Set)
	require.NotNil(t, patch.Status)
	assert.Equal(t, "done", *patch.Status)
}
