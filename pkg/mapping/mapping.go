package mapping

import "database/sql"

func SQLNullStringToValue(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func SQLNullInt32ToPointer(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}
