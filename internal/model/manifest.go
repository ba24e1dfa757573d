// Package model defines the data structures for the migration workflow.
package model

// Path represents a file system path.
type Path string

// Manifest is the ordered list of relative file paths targeted by a migration
// run. Order determines processing order only; every entry is processed
// independently, so reordering never changes outcomes.
type Manifest []Path

// DefaultManifest is the compiled-in, hand-maintained file list used when no
// external manifest is supplied.
var DefaultManifest = Manifest{
	// API routes
	"src/app/api/account-balances/route.ts",
	"src/app/api/history/route.ts",
	"src/app/api/get-latest-rate/route.ts",
	"src/app/api/rate-history/route.ts",
	"src/app/api/publish-rate/route.ts",
	"src/app/api/portfolio/update-prices/route.ts",
	"src/app/api/withdraw/route.ts",
	"src/app/api/deposit/route.ts",
	// Services
	"src/services/portfolioPriceService.ts",
	"src/services/portfolioAuthService.ts",
	"src/services/portfolioWalletService.ts",
	"src/services/token.services.ts",
	"src/services/hederaService.ts",
	"src/services/telegramService.ts",
	"src/services/hederaRateService.ts",
	"src/services/withdrawService.ts",
	"src/services/saucerSwapService.ts",
	"src/services/defiService.ts",
	// Validation services
	"src/features/withdrawals/services/WithdrawValidationService.ts",
	"src/features/deposits/services/DepositValidationService.ts",
	"src/features/rates/services/RateValidationService.ts",
	// Domain
	"src/domain/entities/Withdrawal.ts",
	"src/domain/entities/Deposit.ts",
	"src/domain/value-objects/AccountId.ts",
	"src/domain/value-objects/Rate.ts",
	"src/domain/value-objects/Money.ts",
	// Repositories
	"src/core/repositories/IRateRepository.ts",
	"src/core/repositories/IWithdrawRepository.ts",
	"src/core/repositories/IDepositRepository.ts",
	// Hooks
	"src/hooks/useSyncCooldown.ts",
	"src/hooks/useWalletOrder.ts",
	"src/hooks/useWalletCollapse.ts",
	"src/hooks/useHederaAuth.ts",
	"src/hooks/usePortfolioWallets.ts",
	"src/hooks/useRealTimeRate.ts",
	"src/hooks/useTVL.ts",
	"src/hooks/useTokenPriceRealtime.ts",
	"src/hooks/usePortfolioAuth.ts",
	"src/hooks/useWithdrawals.ts",
	"src/hooks/useProcessModal.ts",
	"src/hooks/useWithdrawSubmit.ts",
	"src/hooks/useHistory.ts",
	"src/hooks/useInstantWithdraw.ts",
	// Components
	"src/components/aggregated-portfolio-view.tsx",
	"src/components/base-wallet-button.tsx",
	"src/components/account-dialog.tsx",
	"src/components/withdraw-dialog.tsx",
	"src/components/process-modal.tsx",
	"src/components/add-wallet-dialog.tsx",
	// App components
	"src/app/(protocol)/earn/components/mint-action-button.tsx",
	"src/app/(protocol)/earn/components/trading-interface.tsx",
	"src/app/(protocol)/earn/components/redeem-action-button.tsx",
	"src/app/(protocol)/hcf-vault/components/hcf-trading-interface.tsx",
	// App hooks
	"src/app/(protocol)/earn/hooks/useAccountID.tsx",
	"src/app/(protocol)/earn/hooks/useTokenBalances.tsx",
	// Pages
	"src/app/(protocol)/portfolio/page.tsx",
	// Config
	"src/config/serverEnv.ts",
	// Providers
	"src/app/providers/wallet-provider.tsx",
}
