package app_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/app"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/core/ports/mocks"
	"go.trai.ch/cram/internal/engine/compat"
	"go.trai.ch/cram/internal/engine/pruner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	configLoader   *mocks.MockConfigLoader
	registryLoader *mocks.MockRegistryLoader
	writer         *mocks.MockManifestWriter
	logger         *mocks.MockLogger
	telemetry      *mocks.MockTelemetry
	app            *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		configLoader:   mocks.NewMockConfigLoader(ctrl),
		registryLoader: mocks.NewMockRegistryLoader(ctrl),
		writer:         mocks.NewMockManifestWriter(ctrl),
		logger:         mocks.NewMockLogger(ctrl),
		telemetry:      mocks.NewMockTelemetry(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Done(gomock.Any()).AnyTimes()
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		},
	).AnyTimes()
	f.telemetry.EXPECT().Close().Return(nil).AnyTimes()

	f.app = app.New(
		f.configLoader,
		f.registryLoader,
		pruner.New(f.logger),
		compat.New(),
		f.writer,
		f.logger,
		f.telemetry,
	)
	return f
}

func testSettings() domain.Settings {
	return domain.Settings{
		Root:         "/store",
		Output:       "/out/manifest.yaml",
		Namespace:    uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Interpreters: []domain.Version{domain.MustVersion("3.1.0")},
	}
}

func testRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	reg := domain.NewRegistry()
	pkg := &domain.Package{
		SourceLocation: "src",
		Releases: map[domain.Version]*domain.Release{
			domain.MustVersion("1.0.0"): {
				Label:       "1.0.0",
				ContentHash: "cafe",
				Interpreter: domain.NewInterval(),
			},
		},
	}
	require.NoError(t, reg.Add("libx", pkg))
	return reg
}

func TestConvert_HappyPath(t *testing.T) {
	f := newFixture(t)
	settings := testSettings()

	f.configLoader.EXPECT().Load("cram.yaml").Return(settings, nil)
	f.registryLoader.EXPECT().Load(gomock.Any(), "/store").Return(testRegistry(t), nil)
	f.writer.EXPECT().Write("/out/manifest.yaml", gomock.Any()).DoAndReturn(
		func(_ string, m *domain.Manifest) error {
			require.Len(t, m.Packages, 1)
			assert.Equal(t, "libx", m.Packages[0].Name)
			return nil
		},
	)

	err := f.app.Convert(context.Background(), "cram.yaml")
	require.NoError(t, err)
}

func TestConvert_ConfigError(t *testing.T) {
	f := newFixture(t)

	f.configLoader.EXPECT().Load("cram.yaml").Return(domain.Settings{}, zerr.New("simulated error"))

	err := f.app.Convert(context.Background(), "cram.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")
}

func TestConvert_LoadError(t *testing.T) {
	f := newFixture(t)

	f.configLoader.EXPECT().Load("cram.yaml").Return(testSettings(), nil)
	f.registryLoader.EXPECT().Load(gomock.Any(), "/store").Return(nil, zerr.New("simulated error"))

	err := f.app.Convert(context.Background(), "cram.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load legacy store")
}

func TestConvert_WriteError(t *testing.T) {
	f := newFixture(t)

	f.configLoader.EXPECT().Load("cram.yaml").Return(testSettings(), nil)
	f.registryLoader.EXPECT().Load(gomock.Any(), "/store").Return(testRegistry(t), nil)
	f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(zerr.New("simulated error"))

	err := f.app.Convert(context.Background(), "cram.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write manifest")
}

func TestConvert_PrunesBeforeAggregating(t *testing.T) {
	f := newFixture(t)

	reg := domain.NewRegistry()
	require.NoError(t, reg.Add("doomed", &domain.Package{
		Releases: map[domain.Version]*domain.Release{
			domain.MustVersion("1.0.0"): {
				Label:       "1.0.0",
				Interpreter: domain.NewInterval(),
				Requires: map[string]domain.Require{
					"ghost": {Constraint: domain.NewInterval()},
				},
			},
		},
	}))

	f.configLoader.EXPECT().Load("cram.yaml").Return(testSettings(), nil)
	f.registryLoader.EXPECT().Load(gomock.Any(), "/store").Return(reg, nil)
	f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, m *domain.Manifest) error {
			assert.Empty(t, m.Packages)
			return nil
		},
	)

	err := f.app.Convert(context.Background(), "cram.yaml")
	require.NoError(t, err)
}
