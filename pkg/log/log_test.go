package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("establishment_id"))
	assert.True(t, keepInDevelopment("facet"))
	assert.True(t, keepInDevelopment("user_role"))
	assert.False(t, keepInDevelopment("sale_id"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithContextCarriesTenant(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	ctx = WithTenant(ctx, "est-1", "admin")

	entry := ForContext(ctx).(*logger).entry

	assert.Equal(t, id, entry.Data[correlationIDField])
	assert.Equal(t, "est-1", entry.Data[establishmentIDField])
	assert.Equal(t, "admin", entry.Data[userRoleField])
}

func TestWithContextWithoutValues(t *testing.T) {
	entry := ForContext(context.Background()).(*logger).entry

	assert.Empty(t, entry.Data)
}
