package address

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToResponse(t *testing.T) {
	now := time.Now()
	a := &Address{
		ID:        uuid.New(),
		UserID:    1,
		FullName:  "John Peak",
		Street:    "123 Main St",
		City:      "Denver",
		State:     "CO",
		ZipCode:   "80202",
		Country:   "US",
		IsDefault: true,
		CreatedAt: now,
	}

	res := ToResponse(a)

	assert.Equal(t, a.ID.String(), res.ID)
	assert.Equal(t, uint(1), res.UserID)
	assert.Equal(t, "John Peak", res.FullName)
	assert.Equal(t, "80202", res.ZipCode)
	assert.True(t, res.IsDefault)
	assert.Equal(t, now, res.CreatedAt)
}

func TestToResponseNil(t *testing.T) {
	assert.Nil(t, ToResponse(nil))
}

func TestToResponseList(t *testing.T) {
	list := ToResponseList([]*Address{
		{ID: uuid.New(), FullName: "A"},
		{ID: uuid.New(), FullName: "B"},
	})

	assert.Len(t, list, 2)
	assert.Equal(t, "A", list[0].FullName)
	assert.Equal(t, "B", list[1].FullName)
}
