package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripcost/internal/repositories"
	"tripcost/internal/services"
	mem "tripcost/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, memcache mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, memcache)
}
