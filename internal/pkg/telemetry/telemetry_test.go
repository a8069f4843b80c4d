package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/telemetry"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "rpg-campaign-api", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupWithEndpoint(t *testing.T) {
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, "rpg-campaign-api", "http://127.0.0.1:4318")
	require.NoError(t, err)

	// nothing was recorded, so shutdown has no spans to flush
	assert.NoError(t, shutdown(ctx))
}
