package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
)

func TestActivityService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := ports.NewMockJournalPort(ctrl)
	svc := NewActivityService(journal)

	journal.EXPECT().ListActivity(gomock.Any(), int64(20), int64(1)).
		Return([]*domain.Activity{{ID: 9, Method: "PUT", Path: "/deliveries"}}, int64(41), nil)

	page, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(41), page.Total)
	assert.Equal(t, int64(3), page.LastPage)
	assert.Equal(t, int64(1), page.TotalInPage)
	assert.Equal(t, int64(20), page.PerPage)
}

func TestActivityService_ListClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := ports.NewMockJournalPort(ctrl)
	svc := NewActivityService(journal)

	journal.EXPECT().ListActivity(gomock.Any(), int64(maxActivityLimit), int64(2)).Return(nil, int64(250), nil)

	page, err := svc.List(context.Background(), 1_000_000_000, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(maxActivityLimit), page.PerPage)
	assert.Equal(t, int64(3), page.LastPage)
	assert.Empty(t, page.Activities)
}

func TestActivityService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := ports.NewMockJournalPort(ctrl)
	svc := NewActivityService(journal)

	journal.EXPECT().ListActivity(gomock.Any(), int64(5), int64(2)).Return(nil, int64(0), errors.New("db down"))

	_, err := svc.List(context.Background(), 5, 2)
	assert.EqualError(t, err, "db down")

	_, err = NewActivityService(nil).List(context.Background(), 5, 2)
	assert.Error(t, err)
}
