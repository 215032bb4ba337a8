package bridge

import (
	"context"
	"time"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/event"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/inbound"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/inference"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/store"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/usecase"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkgconfig"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkgrouter"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkgroutine"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
}

func New(dep Dependency) (func(context.Context) error, error) {
	storage := store.NewInMemoryStore()
	bus := event.NewBus(512)
	consumer := event.NewStatsConsumer(bus, event.NewRecorderHandler(storage), event.ConsumerConfig{
		Workers:     4,
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	eventID, err := pkguid.NewSnowflake()
	if err != nil {
		return nil, err
	}

	var maxFileBytes int64
	if dep.Config != nil {
		maxFileBytes = dep.Config.GetInt("modules.bridge.max_file_bytes")
	}

	uc := usecase.New(usecase.Dependency{
		Inferrer:     inference.NewInferrer(),
		Store:        storage,
		Events:       bus,
		Runner:       dep.Goroutine,
		EventID:      eventID,
		RootCtx:      dep.Context,
		MaxFileBytes: maxFileBytes,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}
