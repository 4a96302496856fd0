package constants

// Persistence keys, one per collection.
const (
	KeyAccounts     = "finance-accounts-storage"
	KeyTransactions = "finance-transactions-storage"
	KeyCategories   = "finance-categories-storage"
	KeySettings     = "finance-settings-storage"
)

// SnapshotVersion is written into every persisted blob.
const SnapshotVersion = 1

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)
