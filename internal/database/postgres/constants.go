package postgres

// Error messages
const (
	ErrMsgGetJackpotClaim    = "failed to get jackpot claim"
	ErrMsgRecordJackpotClaim = "failed to record jackpot claim"
	ErrMsgRecordClaimHistory = "failed to record jackpot claim history"
	ErrMsgBeginTransaction   = "failed to begin transaction"
	ErrMsgCommitTransaction  = "failed to commit transaction"
)

// SQL statements
const (
	queryLastJackpotWin = `SELECT last_won_at FROM jackpot_claims WHERE player_id = $1`

	queryUpsertJackpotClaim = `
		INSERT INTO jackpot_claims (player_id, last_won_at, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id) DO UPDATE
		SET last_won_at = GREATEST(jackpot_claims.last_won_at, EXCLUDED.last_won_at),
		    updated_at = NOW()`

	queryInsertClaimHistory = `INSERT INTO jackpot_claim_history (player_id, won_at) VALUES ($1, $2)`

	queryClaimHistory = `
		SELECT won_at FROM jackpot_claim_history
		WHERE player_id = $1
		ORDER BY won_at DESC
		LIMIT $2`
)
