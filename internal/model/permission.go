package model

// Permission is a flat capability token granted to a user
// (e.g. "production.create"). There is no hierarchy and no wildcard
// matching: every key is a discrete opaque string.
type Permission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Key  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"key"` // e.g., "production.create"
	Name string `gorm:"type:varchar(100)" json:"name"`                    // e.g., "Create Production Order"
}

// DefaultPermissions seeds the closed set of capabilities the app knows about.
var DefaultPermissions = []Permission{
	// Production orders
	{Key: "production.view", Name: "View Production Orders"},
	{Key: "production.create", Name: "Create Production Order"},
	{Key: "production.update", Name: "Update Production Order"},
	{Key: "production.update_status", Name: "Update Production Status"},
	{Key: "production.delete", Name: "Delete Production Order"},
	// Work orders
	{Key: "workorder.view", Name: "View Work Orders"},
	{Key: "workorder.create", Name: "Create Work Order"},
	{Key: "workorder.update", Name: "Update Work Order"},
	{Key: "workorder.delete", Name: "Delete Work Order"},
	// Events / calendar
	{Key: "event.view", Name: "View Events"},
	{Key: "event.create", Name: "Create Event"},
	{Key: "event.update", Name: "Update Event"},
	{Key: "event.delete", Name: "Delete Event"},
	// Inventory
	{Key: "inventory.view", Name: "View Inventory"},
	{Key: "inventory.create", Name: "Create Inventory Item"},
	{Key: "inventory.update", Name: "Update Inventory Item"},
	{Key: "inventory.adjust", Name: "Adjust Stock"},
	{Key: "inventory.delete", Name: "Delete Inventory Item"},
	{Key: "inventory.report", Name: "Generate Inventory Report"},
	// Documents
	{Key: "document.view", Name: "View Documents"},
	{Key: "document.create", Name: "Upload Document"},
	{Key: "document.delete", Name: "Delete Document"},
	// Maintenance / training records
	{Key: "maintenance.view", Name: "View Maintenance Records"},
	{Key: "maintenance.manage", Name: "Manage Maintenance Records"},
	{Key: "training.view", Name: "View Training Records"},
	{Key: "training.manage", Name: "Manage Training Records"},
	// Broadcast messages
	{Key: "message.view", Name: "View Messages"},
	{Key: "message.broadcast", Name: "Broadcast Message"},
	// User management
	{Key: "user.view", Name: "View Users"},
	{Key: "user.create", Name: "Create User"},
	{Key: "user.update", Name: "Update User"},
	{Key: "user.delete", Name: "Delete User"},
	{Key: "user.update_permission", Name: "Update User Permissions"},
}
