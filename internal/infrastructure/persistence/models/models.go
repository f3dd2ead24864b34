// Package models holds the gorm row types.
package models

// All is the AutoMigrate set, parents first.
func All() []interface{} {
	return []interface{}{
		&CompanyModel{},
		&UserModel{},
		&BrandModel{},
		&AssetModel{},
		&AccessRequestModel{},
		&NoteModel{},
		&NotificationModel{},
	}
}
