package bootstrap

import (
	"fitstudio/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CacheModule,
	TracingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
