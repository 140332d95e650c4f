//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/gopetstore/petstore/test/pact"

	petsmemory "github.com/gopetstore/petstore/internal/domains/pets/adapters/memory"
	petsobs "github.com/gopetstore/petstore/internal/domains/pets/adapters/observability"
	petsapp "github.com/gopetstore/petstore/internal/domains/pets/application"
	petdomain "github.com/gopetstore/petstore/internal/domains/pets/domain"
	storememory "github.com/gopetstore/petstore/internal/domains/store/adapters/memory"
	storeobs "github.com/gopetstore/petstore/internal/domains/store/adapters/observability"
	storeapp "github.com/gopetstore/petstore/internal/domains/store/application"
	usersmemory "github.com/gopetstore/petstore/internal/domains/users/adapters/memory"
	usersobs "github.com/gopetstore/petstore/internal/domains/users/adapters/observability"
	usersapp "github.com/gopetstore/petstore/internal/domains/users/application"
	"github.com/gopetstore/petstore/internal/httpapi"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestPetstoreProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StatePetsBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetPets(t)
			return nil, nil
		},
		pacttest.StatePetExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetPets(t)
			if setup {
				app.seedPet(t, pacttest.ExistingPetID)
			}
			return nil, nil
		},
		pacttest.StatePetMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetPets(t)
			return nil, nil
		},
		// Inventory counts are fixed and login uses fixed credentials, so
		// these states need no setup beyond a running provider.
		pacttest.StateInventory: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateUsersBase: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetPets(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	repo   *petsmemory.Repository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	petRepo := petsmemory.NewRepository()
	petService := petsobs.New(petsapp.NewService(petRepo))
	storeService := storeobs.New(storeapp.NewService(storememory.NewRepository()))
	userService := usersobs.New(usersapp.NewService(usersmemory.NewRepository()))

	handlers := httpapi.ApiHandleFunctions{
		PetAPI:   httpapi.NewPetAPI(petService),
		StoreAPI: httpapi.NewStoreAPI(storeService),
		UserAPI:  httpapi.NewUserAPI(userService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = httpapi.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		repo:   petRepo,
		server: server,
	}
}

func (a *contractProviderApp) resetPets(t testing.TB) {
	t.Helper()
	pets, err := a.repo.List(context.Background())
	require.NoError(t, err)
	for _, pet := range pets {
		_ = a.repo.Delete(context.Background(), pet.ID)
	}
}

func (a *contractProviderApp) seedPet(t testing.TB, id int64) {
	t.Helper()
	pet, err := petdomain.NewPet(id, "Fluffy Pact Cat", []string{"https://example.pact/pets/fluffy.png"})
	require.NoError(t, err)
	require.NoError(t, pet.UpdateStatus(petdomain.StatusAvailable))
	_, err = a.repo.Save(context.Background(), pet)
	require.NoError(t, err)
}
