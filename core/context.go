package core

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Johnmustcode/FinancialTools/config"
)

type ServiceContext struct {
	Context context.Context
	Config  *config.Config
	Log     zerolog.Logger
}
