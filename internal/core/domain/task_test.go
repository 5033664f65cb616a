package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTaskInput_Validate(t *testing.T) {
	valid := CreateTaskInput{Name: "Write report", CategoryID: "cat-1"}
	require.NoError(t, valid.Validate())
	require.Equal(t, PriorityMedium, valid.Priority, "empty priority defaults to medium")

	missingName := CreateTaskInput{Name: "   ", CategoryID: "cat-1"}
	require.Equal(t, KindValidationFailed, KindOf(missingName.Validate()))

	longName := CreateTaskInput{Name: strings.Repeat("x", 101), CategoryID: "cat-1"}
	require.Equal(t, KindValidationFailed, KindOf(longName.Validate()))

	longDescription := strings.Repeat("x", 501)
	badDescription := CreateTaskInput{Name: "ok", Description: &longDescription, CategoryID: "cat-1"}
	require.Equal(t, KindValidationFailed, KindOf(badDescription.Validate()))

	badPriority := CreateTaskInput{Name: "ok", Priority: "urgent", CategoryID: "cat-1"}
	require.Equal(t, KindValidationFailed, KindOf(badPriority.Validate()))

	missingCategory := CreateTaskInput{Name: "ok"}
	require.Equal(t, KindValidationFailed, KindOf(missingCategory.Validate()))
}

func TestUpdateTaskInput_Validate(t *testing.T) {
	require.NoError(t, (&UpdateTaskInput{}).Validate(), "an empty update is a no-op, not an error")

	name := "  Trimmed  "
	in := UpdateTaskInput{Name: &name}
	require.NoError(t, in.Validate())
	require.Equal(t, "Trimmed", *in.Name)

	empty := "   "
	require.Equal(t, KindValidationFailed, KindOf((&UpdateTaskInput{Name: &empty}).Validate()))

	bad := Priority("urgent")
	require.Equal(t, KindValidationFailed, KindOf((&UpdateTaskInput{Priority: &bad}).Validate()))

	blankCategory := " "
	require.Equal(t, KindValidationFailed, KindOf((&UpdateTaskInput{CategoryID: &blankCategory}).Validate()))
}

func TestPriority(t *testing.T) {
	require.True(t, PriorityLow.Valid())
	require.False(t, Priority("urgent").Valid())
	require.Greater(t, PriorityHigh.Weight(), PriorityMedium.Weight())
	require.Greater(t, PriorityMedium.Weight(), PriorityLow.Weight())
}

func TestSortKey_Valid(t *testing.T) {
	for _, key := range []SortKey{SortNewest, SortOldest, SortPriority, SortDueDate, SortName} {
		require.True(t, key.Valid(), string(key))
	}
	require.False(t, SortKey("sideways").Valid())
}

func TestTask_OwnerRef(t *testing.T) {
	owner := "u-1"
	require.Nil(t, (&Task{}).OwnerRef())
	require.Equal(t, &owner, (&Task{OwnerID: &owner}).OwnerRef())
}
