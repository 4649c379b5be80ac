package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateBackup(t *testing.T) {
	env := setupRouter()
	env.lists.On("ListIDs", mock.Anything).Return([]string{}, nil)
	env.store.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("backup/b.json", nil)

	w := env.do("POST", "/backup", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(w)
	assert.Equal(t, "backup/b.json", resp["location"])
	assert.Equal(t, float64(0), resp["lists"])
}

func TestCreateBackup_StoreFails(t *testing.T) {
	env := setupRouter()
	env.lists.On("ListIDs", mock.Anything).Return([]string{}, nil)
	env.store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("read-only file system"))

	w := env.do("POST", "/backup", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
