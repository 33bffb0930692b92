package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRunRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRunRepository()
	fixed := time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	run, err := repo.GetLatest(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, run)

	first := &model.TimetableRun{TelegramID: 1, RawResult: []byte(`{"timetable":[]}`)}
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, fixed, first.CreatedAt)

	second := &model.TimetableRun{TelegramID: 1, RawResult: []byte(`{"timetable":[]}`)}
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.GetLatest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.ID)

	other, err := repo.GetLatest(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemoryRunRepositoryRejectsEmptyResult(t *testing.T) {
	err := NewMemoryRunRepository().Save(context.Background(), &model.TimetableRun{TelegramID: 1})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestDecodeRun(t *testing.T) {
	var run model.TimetableRun
	requests := []byte(`[{"subjectName":"Algebra","facultyIds":[7],"duration":2,"frequency":3,"sectionId":null}]`)
	result := []byte(`{"timetable":[{"subjectName":"Algebra","faculty":{"name":"Dr. Smith"},"section":{"name":"A1"},"room":{"roomNumber":"101"},"timeslot":{"day":"Monday","startTime":"09:00","endTime":"10:30"}}],"skippedSlots":[]}`)

	require.NoError(t, decodeRun(&run, requests, result))
	require.Len(t, run.Requests, 1)
	assert.Nil(t, run.Requests[0].SectionID)
	require.NotNil(t, run.Result)
	require.Len(t, run.Result.Timetable, 1)
	assert.Equal(t, "Algebra", run.Result.Timetable[0].SubjectName)
	assert.True(t, run.Result.Timetable[0].Sections.Contains("A1"))
}

func TestDecodeRunMalformed(t *testing.T) {
	var run model.TimetableRun
	assert.Error(t, decodeRun(&run, []byte(`[]`), []byte(`not json`)))
}
