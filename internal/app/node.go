package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachekey/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cachekey/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/cachekey/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cachekey/internal/adapters/output"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cachekey/internal/adapters/params"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cachekey/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/cachekey/internal/engine/transform"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			params.NodeID,
			fs.HasherFactoryNodeID,
			output.NodeID,
			transform.NodeID,
			telemetry.MetricsNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	jobLoader, err := graft.Dep[ports.JobLoader](ctx)
	if err != nil {
		return nil, err
	}

	paramLoader, err := graft.Dep[ports.ParameterLoader](ctx)
	if err != nil {
		return nil, err
	}

	hashers, err := graft.Dep[ports.HasherFactory](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.JobWriter](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*transform.Builder](ctx)
	if err != nil {
		return nil, err
	}

	metrics, err := graft.Dep[*telemetry.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(jobLoader, paramLoader, hashers, writer, builder, metrics, log), nil
}
