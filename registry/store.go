package registry

import (
	"database/sql"

	"github.com/mitsuha/kagami/chain"
	"github.com/pkg/errors"
)

func GetNodeOwner(q Querier, node chain.NodeID) (chain.Address, error) {
	var owner chain.Address
	row := q.QueryRow("SELECT owner FROM nodes WHERE node = ?", node.String())
	err := row.Scan(&owner)
	if err == sql.ErrNoRows {
		return chain.Address{}, nil
	}
	return owner, errors.Wrap(err, "error scanning node owner")
}

func UpsertNodeOwner(tx Transactor, node chain.NodeID, owner chain.Address) error {
	_, err := tx.Exec(`
INSERT INTO nodes (node, owner) VALUES (?, ?)
ON CONFLICT (node) DO UPDATE SET owner = ?
`,
		node.String(),
		owner.HexLabel(),
		owner.HexLabel(),
	)
	return errors.Wrap(err, "error upserting node owner")
}

func GetNodeName(q Querier, node chain.NodeID) (string, error) {
	var name string
	row := q.QueryRow("SELECT name FROM names WHERE node = ?", node.String())
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return name, errors.Wrap(err, "error scanning node name")
}

func UpsertNodeName(tx Transactor, node chain.NodeID, name string) error {
	_, err := tx.Exec(`
INSERT INTO names (node, name) VALUES (?, ?)
ON CONFLICT (node) DO UPDATE SET name = ?
`,
		node.String(),
		name,
		name,
	)
	return errors.Wrap(err, "error upserting node name")
}

func GetRecordedNodes(q Querier) ([]chain.NodeID, error) {
	rows, err := q.Query("SELECT node FROM nodes UNION SELECT node FROM names")
	if err != nil {
		return nil, errors.Wrap(err, "error listing recorded nodes")
	}
	defer rows.Close()

	var nodes []chain.NodeID
	for rows.Next() {
		var node chain.NodeID
		if err := rows.Scan(&node); err != nil {
			return nil, errors.Wrap(err, "error scanning recorded node")
		}
		nodes = append(nodes, node)
	}
	return nodes, errors.Wrap(rows.Err(), "error iterating recorded nodes")
}
