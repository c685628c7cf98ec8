package domain

// RootFolderID is the ID of the auto-created root folder
const RootFolderID = 1

// Folder groups feeds; exactly one root folder always exists
type Folder struct {
	ID     int64
	Name   string
	IsRoot bool
}
