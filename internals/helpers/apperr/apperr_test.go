package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), fiber.StatusBadRequest},
		{NotFound("sponsor"), fiber.StatusNotFound},
		{StoreUnavailable("put", errors.New("boom")), fiber.StatusInternalServerError},
		{Persistence("insert", errors.New("boom")), fiber.StatusInternalServerError},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusOf(c.err), "error %v", c.err)
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("product"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, fiber.StatusNotFound, StatusOf(wrapped))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Persistence("insert row", errors.New("disk full"))
	assert.Equal(t, "insert row failed: disk full", err.Error())
	assert.Equal(t, "sponsor not found", NotFound("sponsor").Error())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrap: %w", &pq.Error{Code: "23505"})))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
