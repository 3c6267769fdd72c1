package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_RejectsEmptyHistory(t *testing.T) {
	t.Parallel()

	g := gemini.NewGenerator(nil, "") // nil client ok, fails before any API call

	_, err := g.Generate(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, docchat.EINVALID, docchat.ErrorCode(err))
}

func TestBuildConfig_TemperatureIsZero(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.Equal(t, float32(0), *config.Temperature)
}
