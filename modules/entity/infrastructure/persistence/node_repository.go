package persistence

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
	"github.com/kanansalman/Umbraco-CMS/modules/entity/infrastructure/persistence/models"
	"github.com/kanansalman/Umbraco-CMS/pkg/composables"
	"github.com/kanansalman/Umbraco-CMS/pkg/repo"
)

// Column and table names below are a wire contract with the node store and
// are preserved verbatim, hence the quoted camelCase identifiers.
const (
	nodeSelectQuery = `SELECT id, "uniqueId", "nodeObjectType", "parentId", path, level, "sortOrder", trashed, text, "nodeUser", "createDate" FROM "umbracoNode"`
	nodeCountQuery  = `SELECT COUNT(*) FROM "umbracoNode"`

	reserveInsertQuery = `
		INSERT INTO "umbracoNode" ("uniqueId", "nodeObjectType", "parentId", path, level, "sortOrder", trashed, text, "createDate")
		VALUES ($1, $2, -1, '-1', 1, 0, false, 'RESERVED.ID', now())
		RETURNING id
	`
)

type NodeRepository struct{}

func NewNodeRepository() entity.Repository {
	return &NodeRepository{}
}

func (r *NodeRepository) GetObjectType(ctx context.Context, id int) (uuid.UUID, error) {
	where := repo.NewCondition().Eq("id", id)
	return r.scalarObjectType(ctx, where)
}

func (r *NodeRepository) GetObjectTypeByKey(ctx context.Context, key uuid.UUID) (uuid.UUID, error) {
	where := repo.NewCondition().Eq(`"uniqueId"`, key)
	return r.scalarObjectType(ctx, where)
}

func (r *NodeRepository) scalarObjectType(ctx context.Context, where *repo.Condition) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var objectType uuid.UUID
	query := `SELECT "nodeObjectType" FROM "umbracoNode" WHERE ` + where.SQL()
	if err := tx.QueryRow(ctx, query, where.Args()...).Scan(&objectType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, entity.ErrEntityNotFound
		}
		return uuid.Nil, errors.Wrap(err, "failed to resolve object type")
	}
	return objectType, nil
}

func (r *NodeRepository) GetOne(ctx context.Context, id int) (*entity.Entity, error) {
	return r.getOne(ctx, repo.NewCondition().Eq("id", id))
}

func (r *NodeRepository) GetOneByKey(ctx context.Context, key uuid.UUID) (*entity.Entity, error) {
	return r.getOne(ctx, repo.NewCondition().Eq(`"uniqueId"`, key))
}

func (r *NodeRepository) GetOneOfType(ctx context.Context, id int, objectType uuid.UUID) (*entity.Entity, error) {
	return r.getOne(ctx, repo.NewCondition().Eq("id", id).Eq(`"nodeObjectType"`, objectType))
}

func (r *NodeRepository) GetOneOfTypeByKey(ctx context.Context, key uuid.UUID, objectType uuid.UUID) (*entity.Entity, error) {
	return r.getOne(ctx, repo.NewCondition().Eq(`"uniqueId"`, key).Eq(`"nodeObjectType"`, objectType))
}

func (r *NodeRepository) getOne(ctx context.Context, where *repo.Condition) (*entity.Entity, error) {
	nodes, err := r.queryNodes(ctx, nodeSelectQuery+" WHERE "+where.SQL(), where.Args()...)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, entity.ErrEntityNotFound
	}
	return nodes[0], nil
}

func (r *NodeRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM "umbracoNode" WHERE id = $1)`, id)
}

func (r *NodeRepository) ExistsByKey(ctx context.Context, key uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM "umbracoNode" WHERE "uniqueId" = $1)`, key)
}

func (r *NodeRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}

	var found bool
	if err := tx.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, errors.Wrap(err, "failed to probe node existence")
	}
	return found, nil
}

func (r *NodeRepository) GetAll(ctx context.Context, objectType uuid.UUID, ids ...int) ([]*entity.Entity, error) {
	where := repo.NewCondition().Eq(`"nodeObjectType"`, objectType)
	if len(ids) > 0 {
		where.In("id", int32Slice(ids))
	}
	query := nodeSelectQuery + " WHERE " + where.SQL() + " ORDER BY id ASC"
	return r.queryNodes(ctx, query, where.Args()...)
}

func (r *NodeRepository) GetAllByKeys(ctx context.Context, objectType uuid.UUID, keys ...uuid.UUID) ([]*entity.Entity, error) {
	where := repo.NewCondition().Eq(`"nodeObjectType"`, objectType)
	if len(keys) > 0 {
		where.In(`"uniqueId"`, keys)
	}
	query := nodeSelectQuery + " WHERE " + where.SQL() + " ORDER BY id ASC"
	return r.queryNodes(ctx, query, where.Args()...)
}

func (r *NodeRepository) GetChildren(ctx context.Context, parentID int, objectType uuid.UUID) ([]*entity.Entity, error) {
	where := repo.NewCondition().Eq(`"parentId"`, parentID)
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}
	query := nodeSelectQuery + " WHERE " + where.SQL() + ` ORDER BY "sortOrder" ASC`
	return r.queryNodes(ctx, query, where.Args()...)
}

func (r *NodeRepository) GetDescendants(ctx context.Context, path string, selfID int, objectType uuid.UUID) ([]*entity.Entity, error) {
	where := repo.NewCondition().
		Prefix("path", path+",").
		NotEq("id", selfID)
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}
	query := nodeSelectQuery + " WHERE " + where.SQL() + " ORDER BY path ASC"
	return r.queryNodes(ctx, query, where.Args()...)
}

func (r *NodeRepository) GetPagedChildren(ctx context.Context, parentID int, objectType uuid.UUID, params *entity.PageParams) ([]*entity.Entity, int64, error) {
	where := repo.NewCondition().
		Eq(`"parentId"`, parentID).
		Eq("trashed", false)
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}
	if params.Filter != "" {
		where.Contains("text", params.Filter)
	}
	return r.queryPaged(ctx, where, params, `"sortOrder"`)
}

func (r *NodeRepository) GetPagedDescendants(ctx context.Context, roots []entity.TreeEntityPath, objectType uuid.UUID, params *entity.PageParams, includeRoots bool) ([]*entity.Entity, int64, error) {
	if len(roots) == 0 {
		return nil, 0, nil
	}

	where := repo.NewCondition()
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}
	// Roots sitting at the top level have no trailing comma in their own path
	// to prefix-match, so each root contributes a suffix clause for its own
	// row next to the subtree prefix clause.
	where.OrGroup(func(g *repo.Condition) {
		for _, root := range roots {
			g.Prefix("path", root.Path+",")
			if includeRoots {
				g.Suffix("path", ","+strconv.Itoa(root.ID))
			}
		}
	})
	return r.queryPaged(ctx, where, params, "path")
}

func (r *NodeRepository) GetPagedOfType(ctx context.Context, objectType uuid.UUID, params *entity.PageParams, includeTrashed bool) ([]*entity.Entity, int64, error) {
	where := repo.NewCondition().Eq(`"nodeObjectType"`, objectType)
	if !includeTrashed {
		where.Eq("trashed", false)
	}
	return r.queryPaged(ctx, where, params, "path")
}

func (r *NodeRepository) GetPaths(ctx context.Context, objectType uuid.UUID, ids ...int) ([]entity.TreeEntityPath, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	where := repo.NewCondition()
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}
	if len(ids) > 0 {
		where.In("id", int32Slice(ids))
	}
	query := `SELECT id, path FROM "umbracoNode"`
	if !where.Empty() {
		query += " WHERE " + where.SQL()
	}

	rows, err := tx.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query node paths")
	}
	defer rows.Close()

	var paths []entity.TreeEntityPath
	for rows.Next() {
		var p entity.TreeEntityPath
		if err := rows.Scan(&p.ID, &p.Path); err != nil {
			return nil, errors.Wrap(err, "failed to scan node path")
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return paths, nil
}

func (r *NodeRepository) GetIDForKey(ctx context.Context, key uuid.UUID, objectType uuid.UUID) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	where := repo.NewCondition().Eq(`"uniqueId"`, key)
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}

	var id int
	query := `SELECT id FROM "umbracoNode" WHERE ` + where.SQL()
	if err := tx.QueryRow(ctx, query, where.Args()...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrEntityNotFound
		}
		return 0, errors.Wrap(err, "failed to map key to id")
	}
	return id, nil
}

func (r *NodeRepository) GetKeyForID(ctx context.Context, id int, objectType uuid.UUID) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	where := repo.NewCondition().Eq("id", id)
	if objectType != uuid.Nil {
		where.Eq(`"nodeObjectType"`, objectType)
	}

	var key uuid.UUID
	query := `SELECT "uniqueId" FROM "umbracoNode" WHERE ` + where.SQL()
	if err := tx.QueryRow(ctx, query, where.Args()...).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, entity.ErrEntityNotFound
		}
		return uuid.Nil, errors.Wrap(err, "failed to map id to key")
	}
	return key, nil
}

// ReserveID inserts a placeholder row for the key. The caller delimits the
// transaction; the unique index on "uniqueId" serializes concurrent attempts.
func (r *NodeRepository) ReserveID(ctx context.Context, key uuid.UUID) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var existing int
	err = tx.QueryRow(
		ctx,
		`SELECT id FROM "umbracoNode" WHERE "uniqueId" = $1 AND "nodeObjectType" = $2`,
		key, entity.ReservationObjectType,
	).Scan(&existing)
	switch {
	case err == nil:
		return 0, entity.ErrKeyAlreadyReserved
	case !errors.Is(err, pgx.ErrNoRows):
		return 0, errors.Wrap(err, "failed to check existing reservation")
	}

	var id int
	if err := tx.QueryRow(ctx, reserveInsertQuery, key, entity.ReservationObjectType).Scan(&id); err != nil {
		// A racing reservation can commit between the check and the insert;
		// the loser hits the unique index on "uniqueId" instead of the check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, entity.ErrKeyAlreadyReserved
		}
		return 0, errors.Wrap(err, "failed to insert reservation")
	}
	return id, nil
}

func (r *NodeRepository) queryPaged(ctx context.Context, where *repo.Condition, params *entity.PageParams, defaultOrder string) ([]*entity.Entity, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := nodeCountQuery + " WHERE " + where.SQL()
	if err := tx.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "failed to count nodes")
	}
	if total == 0 {
		return nil, 0, nil
	}

	query := nodeSelectQuery + " WHERE " + where.SQL() +
		" " + repo.FormatOrderBy(orderColumn(params.OrderBy, defaultOrder), params.Ascending) +
		" " + repo.FormatLimitOffset(params.PageSize, params.Offset())
	nodes, err := r.queryNodes(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, err
	}
	return nodes, total, nil
}

func (r *NodeRepository) queryNodes(ctx context.Context, query string, args ...any) ([]*entity.Entity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var entities []*entity.Entity
	for rows.Next() {
		var n models.Node
		if err := rows.Scan(
			&n.ID,
			&n.UniqueID,
			&n.NodeObjectType,
			&n.ParentID,
			&n.Path,
			&n.Level,
			&n.SortOrder,
			&n.Trashed,
			&n.Text,
			&n.NodeUser,
			&n.CreateDate,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan node row")
		}
		entities = append(entities, toDomainEntity(&n))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return entities, nil
}

// orderColumn maps a caller-facing sort key to its column, falling back to
// the query's natural sort for anything outside the whitelist.
func orderColumn(name, fallback string) string {
	switch name {
	case "id":
		return "id"
	case "name":
		return "text"
	case "path":
		return "path"
	case "sortOrder":
		return `"sortOrder"`
	case "createDate":
		return `"createDate"`
	}
	return fallback
}

func int32Slice(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}
