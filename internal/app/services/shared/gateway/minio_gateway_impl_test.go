package gateway

import (
	"context"
	"testing"

	"claimgate-service/internal/app/config"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTransmitRefusesEmptyPayload(t *testing.T) {
	cfg := &config.InternalConfig{}
	cfg.Gateway.Bucket = "payer-inbound"

	// The refusal must happen before any bucket traffic, so no client is
	// needed.
	g := NewMinioGateway(nil, zap.NewNop(), cfg)

	err := g.Transmit(context.Background(), "CLM_EMPTY.dat", nil)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)

	err = g.Transmit(context.Background(), "CLM_EMPTY.dat", []byte{})
	assert.Error(t, err)
}
