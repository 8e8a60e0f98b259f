package dbmodels

// EmployeeFile indexes a document stored in S3 for an employee.
// The object itself lives in the bucket under ObjectKey.
type EmployeeFile struct {
	BaseModel
	EmployeeRef string `gorm:"index"`
	FileName    string
	ContentType string
	FileSize    int64
	ObjectKey   string `gorm:"uniqueIndex"`
}
