package models

type ContractCategory string

const (
	ContractCategoryPermanent   ContractCategory = "permanent"
	ContractCategoryThreeMonths ContractCategory = "3_MONTHS"
	ContractCategorySixMonths   ContractCategory = "6_MONTHS"
	ContractCategoryOneYear     ContractCategory = "1_YEAR"
)

// DefaultProbationDays is the fallback policy applied when the contract
// category has no stored configuration.
const DefaultProbationDays = 90

type DeletionType string

const (
	DeletionTypeSoft DeletionType = "soft"
	DeletionTypeHard DeletionType = "hard"
)

// ArchiveQuality tags how complete an archive snapshot is.
type ArchiveQuality string

const (
	ArchiveQualityComplete ArchiveQuality = "complete" // full record with related rows
	ArchiveQualityPartial  ArchiveQuality = "partial"  // employee row only
	ArchiveQualityBasic    ArchiveQuality = "basic"    // key fields only
	ArchiveQualityMinimal  ArchiveQuality = "minimal"  // identifiers only
)
