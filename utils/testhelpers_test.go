package utils

import (
	"testing"

	"go-breakfast/models"

	"github.com/stretchr/testify/require"
)

func defaultItem(t *testing.T, id string) models.MenuItem {
	t.Helper()
	item, err := models.DefaultCatalog().FindItemByID(id)
	require.NoError(t, err)
	return item
}
