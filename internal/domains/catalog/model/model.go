package model

import "tavola/shared/model"

const (
	AreaTableName  = "areas"
	AreaEntityName = "area"

	AreaFieldID     = "id"
	AreaFieldName   = "name"
	AreaFieldActive = "active"
)

// Area is a physical section of the dining room (terrace, main hall, ...).
type Area struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
	model.Metadata
}

const (
	TableTableName  = "dining_tables"
	TableEntityName = "dining_table"

	TableFieldID          = "id"
	TableFieldAreaID      = "area_id"
	TableFieldName        = "name"
	TableFieldCapacity    = "capacity"
	TableFieldMinCapacity = "min_capacity"
	TableFieldMaxCapacity = "max_capacity"
	TableFieldActive      = "active"
)

// Table is a physical seating unit. MinCapacity and MaxCapacity bound the
// party sizes acceptable for a single-table seating; Capacity is the seat
// count used when the table participates in a joined combination.
type Table struct {
	ID          string `db:"id"`
	AreaID      string `db:"area_id"`
	Name        string `db:"name"`
	Capacity    int    `db:"capacity"`
	MinCapacity int    `db:"min_capacity"`
	MaxCapacity int    `db:"max_capacity"`
	Active      bool   `db:"active"`
	model.Metadata
}

// Fits reports whether the table alone can seat the party.
func (t *Table) Fits(people int) bool {
	return t.Active && t.MinCapacity <= people && people <= t.MaxCapacity
}

const (
	GroupTableName  = "table_groups"
	GroupEntityName = "table_group"

	GroupFieldID                  = "id"
	GroupFieldAreaID              = "area_id"
	GroupFieldName                = "name"
	GroupFieldMaxCombinedCapacity = "max_combined_capacity"
	GroupFieldActive              = "active"
)

// TableGroup names a set of tables in one area that may be physically
// joined. MaxCombinedCapacity caps the seats of a combination even when
// the member sum exceeds it (joined tables lose corner seats).
type TableGroup struct {
	ID                  string `db:"id"`
	AreaID              string `db:"area_id"`
	Name                string `db:"name"`
	MaxCombinedCapacity int    `db:"max_combined_capacity"`
	Active              bool   `db:"active"`
	model.Metadata
}

const (
	MemberTableName  = "table_group_members"
	MemberEntityName = "table_group_member"

	MemberFieldID        = "id"
	MemberFieldGroupID   = "group_id"
	MemberFieldTableID   = "table_id"
	MemberFieldJoinOrder = "join_order"
)

// GroupMember orders a table inside a group. JoinOrder only fixes the
// iteration order; it carries no capacity meaning.
type GroupMember struct {
	ID        string `db:"id"`
	GroupID   string `db:"group_id"`
	TableID   string `db:"table_id"`
	JoinOrder int    `db:"join_order"`
	model.Metadata
}
