package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tvoy/cmd/tvoy/commands"
	"go.trai.ch/tvoy/internal/app"
	"go.trai.ch/tvoy/internal/build"
	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/tvoy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader      *mocks.MockConfigLoader
	resolver    *mocks.MockPathResolver
	locator     *mocks.MockInterpreterLocator
	provisioner *mocks.MockProvisioner
	executor    *mocks.MockExecutor
}

func newCLI(t *testing.T) (*commands.CLI, *cliMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &cliMocks{
		loader:      mocks.NewMockConfigLoader(ctrl),
		resolver:    mocks.NewMockPathResolver(ctrl),
		locator:     mocks.NewMockInterpreterLocator(ctrl),
		provisioner: mocks.NewMockProvisioner(ctrl),
		executor:    mocks.NewMockExecutor(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).
		AnyTimes()

	a := app.New(m.loader, m.resolver, m.locator, m.provisioner, m.executor, logger, telemetry)

	out := &bytes.Buffer{}
	a.SetOutput(out)

	cli := commands.New(a)
	cli.SetOut(out)
	return cli, m, out
}

func TestRoot_ConvertsInput(t *testing.T) {
	cli, m, out := newCLI(t)

	settings := &domain.Settings{
		ScriptPath:   "/opt/tvoy/broker_to_target.py",
		ManifestPath: "/opt/tvoy/requirements.txt",
		EnvDir:       "/opt/tvoy/.venv",
		OutputName:   "tvoy_result.xlsx",
		IncludeCash:  true,
		Debug:        true,
	}

	m.loader.EXPECT().Load(".").Return(settings, nil).Times(1)
	m.resolver.EXPECT().ResolveInput("report.xlsx").Return("/data/report.xlsx", nil).Times(1)
	m.resolver.EXPECT().OutputPath("/data/report.xlsx", "tvoy_result.xlsx").Return("/data/tvoy_result.xlsx").Times(1)
	m.locator.EXPECT().Find("").Return("/usr/bin/python3", nil).Times(1)
	m.provisioner.EXPECT().
		EnsureReady(gomock.Any(), "/usr/bin/python3", "/opt/tvoy/requirements.txt", "/opt/tvoy/.venv").
		Return(nil).Times(1)
	m.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.Request, _ []string) error {
			// Flags after the input file are forwarded, not parsed by cobra.
			assert.Equal(t, []string{"--debug-sheets"}, req.ExtraArgs)
			return nil
		}).Times(1)

	cli.SetArgs([]string{"report.xlsx", "--debug-sheets"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Done. Result written to /data/tvoy_result.xlsx")
}

func TestRoot_NoArgsPrintsUsage(t *testing.T) {
	cli, _, out := newCLI(t)

	cli.SetArgs([]string{})

	err := cli.Execute(context.Background())
	assert.True(t, errors.Is(err, domain.ErrUsage))
	assert.Contains(t, out.String(), "tvoy <input-file>")
}

func TestRoot_Help(t *testing.T) {
	cli, _, out := newCLI(t)

	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "forwarded to the converter verbatim")
}

func TestVersionCommand(t *testing.T) {
	cli, _, out := newCLI(t)

	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version, strings.TrimSpace(out.String()))
}
