package fx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestAppModuleGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(AppModule))
}
