package nuget_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/nuget"
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fubuMvcManifest = `<?xml version="1.0"?>
<package>
  <metadata>
    <id>FubuMVC.Core</id>
    <version>1.0.0.0</version>
    <dependencies>
      <dependency id="FubuCore" version="[1.0.0.0,2.0)" />
      <dependency id="Bottles" version="0.9.9.9" />
    </dependencies>
  </metadata>
</package>`

func newService() *nuget.Service {
	return nuget.NewService(newFileSystem(), codec, &nopLogger{})
}

func TestService_NugetForPicksHighestAcrossFeeds(t *testing.T) {
	fixed := t.TempDir()
	floating := t.TempDir()
	createNuget(t, fixed, "FubuCore", "1.0.0.0")
	createNuget(t, floating, "FubuCore", "1.1.0.0")
	createNuget(t, floating, "FubuCore", "1.2.0.0-beta")

	sol := newSolution(t.TempDir(),
		domain.FeedSource{Path: fixed, Stability: domain.StabilityReleasedOnly},
		domain.FeedSource{Path: floating, Kind: domain.FeedFloating, Stability: domain.StabilityReleasedOnly},
	)
	svc := newService()

	file, err := svc.NugetFor(context.Background(), sol, domain.FloatFor("fubucore"))
	require.NoError(t, err)
	assert.Equal(t, "1.1.0.0", file.Identity().Version.String())

	anything := domain.FloatFor("FubuCore")
	anything.Stability = domain.StabilityAnything
	file, err = svc.NugetFor(context.Background(), sol, anything)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0.0-beta", file.Identity().Version.String())

	file, err = svc.NugetFor(context.Background(), sol, domain.NewDependency("FubuCore", "1.0.0.0"))
	require.NoError(t, err)
	assert.Equal(t, fixed, filepath.Dir(file.FileName()))
}

func TestService_NugetForNotFound(t *testing.T) {
	feed := t.TempDir()
	createNuget(t, feed, "Bottles", "1.0.0.0")
	sol := newSolution(t.TempDir(), domain.FeedSource{Path: feed})
	svc := newService()

	_, err := svc.NugetFor(context.Background(), sol, domain.FloatFor("Missing"))
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound), "got %v", err)

	_, err = svc.NugetFor(context.Background(), sol, domain.NewDependency("Bottles", "9.9.9.9"))
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound), "got %v", err)

	_, err = svc.NugetFor(context.Background(), newSolution(t.TempDir()), domain.FloatFor("Bottles"))
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound), "got %v", err)
}

func TestService_DependenciesFor(t *testing.T) {
	feed := t.TempDir()
	createPackage(t, feed, "FubuMVC.Core", "1.0.0.0", fubuMvcManifest, nil)
	sol := newSolution(t.TempDir(), domain.FeedSource{Path: feed})
	svc := newService()

	target := domain.NewDependency("FubuMVC.Core", "1.0.0.0")

	fixed, err := svc.DependenciesFor(context.Background(), sol, target, domain.ModeFixed)
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{
		domain.NewDependency("FubuCore", "1.0.0.0"),
		domain.NewDependency("Bottles", "0.9.9.9"),
	}, fixed)

	floating, err := svc.DependenciesFor(context.Background(), sol, target, domain.ModeFloat)
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{domain.FloatFor("FubuCore"), domain.FloatFor("Bottles")}, floating)
}

func TestService_DependenciesForReadsEachManifestOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	manifests := mocks.NewMockArchiveCodec(ctrl)

	feed := t.TempDir()
	createNuget(t, feed, "FubuMVC.Core", "1.0.0.0")
	sol := newSolution(t.TempDir(), domain.FeedSource{Path: feed})

	manifests.EXPECT().Manifest(gomock.Any()).Return([]byte(fubuMvcManifest), nil).Times(1)
	svc := nuget.NewService(newFileSystem(), manifests, &nopLogger{})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deps, err := svc.DependenciesFor(context.Background(), sol, domain.FloatFor("FubuMVC.Core"), domain.ModeFloat)
			assert.NoError(t, err)
			assert.Len(t, deps, 2)
		}()
	}
	wg.Wait()
}

func TestService_Latest(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	fixed := t.TempDir()
	createNuget(t, first, "FubuCore", "1.0.0.0")
	createNuget(t, first, "Bottles", "1.0.0.0")
	createNuget(t, second, "fubucore", "1.1.0.0")
	createNuget(t, fixed, "OnlyFixed", "1.0.0.0")

	sol := newSolution(t.TempDir(),
		domain.FeedSource{Path: first, Kind: domain.FeedFloating},
		domain.FeedSource{Path: second, Kind: domain.FeedFloating},
		domain.FeedSource{Path: fixed},
	)

	latest, err := newService().Latest(context.Background(), sol)
	require.NoError(t, err)

	var got []string
	for _, id := range latest {
		got = append(got, id.Name+","+id.Version.String())
	}
	assert.Equal(t, []string{"Bottles,1.0.0.0", "fubucore,1.1.0.0"}, got)
}

func TestService_LatestHonoursCancellation(t *testing.T) {
	feed := t.TempDir()
	createNuget(t, feed, "Bottles", "1.0.0.0")
	sol := newSolution(t.TempDir(), domain.FeedSource{Path: feed, Kind: domain.FeedFloating})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService().Latest(ctx, sol)
	assert.ErrorIs(t, err, context.Canceled)
}
