package app

import (
	"fmt"

	"github.com/allisson/stegotext/internal/database"
	"github.com/allisson/stegotext/internal/storage"
	stegoHTTP "github.com/allisson/stegotext/internal/stego/http"
	stegoRepository "github.com/allisson/stegotext/internal/stego/repository"
	stegoService "github.com/allisson/stegotext/internal/stego/service"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
)

// ArtifactStore returns the blob-backed store for text artifacts and key files.
func (c *Container) ArtifactStore() (*storage.ArtifactStore, error) {
	var err error
	c.artifactStoreInit.Do(func() {
		c.artifactStore, err = c.initArtifactStore()
		if err != nil {
			c.setInitError("artifactStore", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("artifactStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.artifactStore, nil
}

// KeyFileRepository returns a repository for key files stored next to artifacts.
func (c *Container) KeyFileRepository() (*stegoRepository.KeyFileRepository, error) {
	store, err := c.ArtifactStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact store for key file repository: %w", err)
	}
	return stegoRepository.NewKeyFileRepository(store), nil
}

// KMSKeeper returns the keeper used to seal stored keys.
// It returns nil without error when KMS_KEY_URI is not set.
func (c *Container) KMSKeeper() (stegoService.KMSKeeper, error) {
	var err error
	c.kmsKeeperInit.Do(func() {
		c.kmsKeeper, err = c.initKMSKeeper()
		if err != nil {
			c.setInitError("kmsKeeper", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("kmsKeeper"); storedErr != nil {
		return nil, storedErr
	}
	return c.kmsKeeper, nil
}

// KeyGenerator returns the dynamic key generator.
func (c *Container) KeyGenerator() stegoService.KeyGenerator {
	c.keyGeneratorInit.Do(func() {
		c.keyGenerator = stegoService.NewKeyGenerator()
	})
	return c.keyGenerator
}

// KeySealer returns the sealer for stored key material.
func (c *Container) KeySealer() (stegoService.KeySealer, error) {
	var err error
	c.keySealerInit.Do(func() {
		c.keySealer, err = c.initKeySealer()
		if err != nil {
			c.setInitError("keySealer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keySealer"); storedErr != nil {
		return nil, storedErr
	}
	return c.keySealer, nil
}

// KeyRepository returns the stored key repository for the configured database driver.
func (c *Container) KeyRepository() (stegoUseCase.KeyRepository, error) {
	var err error
	c.keyRepositoryInit.Do(func() {
		c.keyRepository, err = c.initKeyRepository()
		if err != nil {
			c.setInitError("keyRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyRepository, nil
}

// StegoUseCase returns the encode, decode and inspect use case. It needs no database.
func (c *Container) StegoUseCase() (stegoUseCase.StegoUseCase, error) {
	var err error
	c.stegoUseCaseInit.Do(func() {
		c.stegoUseCase, err = c.initStegoUseCase()
		if err != nil {
			c.setInitError("stegoUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("stegoUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.stegoUseCase, nil
}

// KeyUseCase returns the server-side key registry use case.
func (c *Container) KeyUseCase() (stegoUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.setInitError("keyUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// StegoHandler returns the stego HTTP handler instance.
func (c *Container) StegoHandler() (*stegoHTTP.StegoHandler, error) {
	var err error
	c.stegoHandlerInit.Do(func() {
		c.stegoHandler, err = c.initStegoHandler()
		if err != nil {
			c.setInitError("stegoHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("stegoHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.stegoHandler, nil
}

// KeyHandler returns the key registry HTTP handler instance.
func (c *Container) KeyHandler() (*stegoHTTP.KeyHandler, error) {
	var err error
	c.keyHandlerInit.Do(func() {
		c.keyHandler, err = c.initKeyHandler()
		if err != nil {
			c.setInitError("keyHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyHandler, nil
}

// initArtifactStore opens the bucket configured by STORAGE_URL.
func (c *Container) initArtifactStore() (*storage.ArtifactStore, error) {
	store, err := storage.Open(c.ctx, c.config.StorageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact store: %w", err)
	}
	return store, nil
}

// initKMSKeeper opens the keeper configured by KMS_KEY_URI, if any.
func (c *Container) initKMSKeeper() (stegoService.KMSKeeper, error) {
	if c.config.KMSKeyURI == "" {
		c.Logger().Warn("KMS_KEY_URI not set: stored keys will be kept unsealed")
		return nil, nil
	}

	keeper, err := stegoService.NewKMSService().OpenKeeper(c.ctx, c.config.KMSKeyURI)
	if err != nil {
		return nil, err
	}
	return keeper, nil
}

// initKeySealer creates the sealer on top of the optional KMS keeper.
func (c *Container) initKeySealer() (stegoService.KeySealer, error) {
	keeper, err := c.KMSKeeper()
	if err != nil {
		return nil, fmt.Errorf("failed to get kms keeper for key sealer: %w", err)
	}
	return stegoService.NewKeySealer(keeper), nil
}

// initKeyRepository creates the key repository based on the database driver.
func (c *Container) initKeyRepository() (stegoUseCase.KeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return stegoRepository.NewPostgreSQLKeyRepository(db), nil
	case database.DriverMySQL:
		return stegoRepository.NewMySQLKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initStegoUseCase wires the codec, cipher, embedder, extractor and inspector.
func (c *Container) initStegoUseCase() (stegoUseCase.StegoUseCase, error) {
	codec := stegoService.NewBitCodec()

	baseUseCase := stegoUseCase.NewStegoUseCase(
		codec,
		stegoService.NewKeyedCipher(),
		stegoService.NewEmbedder(codec),
		stegoService.NewExtractor(codec),
		stegoService.NewInspector(codec),
		c.config.StegoMaxSecretBytes,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for stego use case: %w", err)
		}
		return stegoUseCase.NewStegoUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initKeyUseCase creates the key use case with all its dependencies.
func (c *Container) initKeyUseCase() (stegoUseCase.KeyUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for key use case: %w", err)
	}

	keyRepository, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key use case: %w", err)
	}

	keySealer, err := c.KeySealer()
	if err != nil {
		return nil, fmt.Errorf("failed to get key sealer for key use case: %w", err)
	}

	baseUseCase := stegoUseCase.NewKeyUseCase(
		txManager,
		keyRepository,
		c.KeyGenerator(),
		keySealer,
		c.config.StegoKeySize,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
		}
		return stegoUseCase.NewKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initStegoHandler creates the stego HTTP handler with all its dependencies.
func (c *Container) initStegoHandler() (*stegoHTTP.StegoHandler, error) {
	stegoUC, err := c.StegoUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get stego use case for stego handler: %w", err)
	}

	keyUC, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for stego handler: %w", err)
	}

	return stegoHTTP.NewStegoHandler(stegoUC, keyUC, c.Logger()), nil
}

// initKeyHandler creates the key HTTP handler with all its dependencies.
func (c *Container) initKeyHandler() (*stegoHTTP.KeyHandler, error) {
	keyUC, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for key handler: %w", err)
	}

	return stegoHTTP.NewKeyHandler(keyUC, c.Logger()), nil
}
