package database

import (
	"context"
	"database/sql"
	_ "embed"
)

//go:embed schema.sql
var schema string

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db DBTX) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

type CustomerRow struct {
	ID           string
	Name         string
	Street       string
	Number       int
	Zipcode      string
	City         string
	Active       bool
	RewardPoints int
}

const createCustomer = `INSERT INTO customers (id, name, street, number, zipcode, city, active, reward_points)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateCustomer(ctx context.Context, arg CustomerRow) error {
	_, err := q.db.ExecContext(ctx, createCustomer,
		arg.ID, arg.Name, arg.Street, arg.Number, arg.Zipcode, arg.City, arg.Active, arg.RewardPoints)
	return err
}

const updateCustomer = `UPDATE customers
SET name = $2, street = $3, number = $4, zipcode = $5, city = $6, active = $7, reward_points = $8
WHERE id = $1`

func (q *Queries) UpdateCustomer(ctx context.Context, arg CustomerRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateCustomer,
		arg.ID, arg.Name, arg.Street, arg.Number, arg.Zipcode, arg.City, arg.Active, arg.RewardPoints)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const selectCustomer = `SELECT id, name, street, number, zipcode, city, active, reward_points FROM customers`

func scanCustomer(row interface{ Scan(...interface{}) error }) (CustomerRow, error) {
	var c CustomerRow
	err := row.Scan(&c.ID, &c.Name, &c.Street, &c.Number, &c.Zipcode, &c.City, &c.Active, &c.RewardPoints)
	return c, err
}

func (q *Queries) GetCustomer(ctx context.Context, id string) (CustomerRow, error) {
	return scanCustomer(q.db.QueryRowContext(ctx, selectCustomer+` WHERE id = $1`, id))
}

func (q *Queries) ListCustomers(ctx context.Context) ([]CustomerRow, error) {
	rows, err := q.db.QueryContext(ctx, selectCustomer+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CustomerRow
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

type ProductRow struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

const createProduct = `INSERT INTO products (id, name, description, price) VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateProduct(ctx context.Context, arg ProductRow) error {
	_, err := q.db.ExecContext(ctx, createProduct, arg.ID, arg.Name, arg.Description, arg.Price)
	return err
}

const updateProduct = `UPDATE products SET name = $2, description = $3, price = $4 WHERE id = $1`

func (q *Queries) UpdateProduct(ctx context.Context, arg ProductRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateProduct, arg.ID, arg.Name, arg.Description, arg.Price)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const selectProduct = `SELECT id, name, description, price FROM products`

func scanProduct(row interface{ Scan(...interface{}) error }) (ProductRow, error) {
	var p ProductRow
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	return p, err
}

func (q *Queries) GetProduct(ctx context.Context, id string) (ProductRow, error) {
	return scanProduct(q.db.QueryRowContext(ctx, selectProduct+` WHERE id = $1`, id))
}

func (q *Queries) ListProducts(ctx context.Context) ([]ProductRow, error) {
	rows, err := q.db.QueryContext(ctx, selectProduct+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProductRow
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

type OrderRow struct {
	ID         string
	CustomerID string
	Total      float64
}

type OrderItemRow struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

const createOrder = `INSERT INTO orders (id, customer_id, total) VALUES ($1, $2, $3)`

func (q *Queries) CreateOrder(ctx context.Context, arg OrderRow) error {
	_, err := q.db.ExecContext(ctx, createOrder, arg.ID, arg.CustomerID, arg.Total)
	return err
}

const updateOrder = `UPDATE orders SET customer_id = $2, total = $3 WHERE id = $1`

func (q *Queries) UpdateOrder(ctx context.Context, arg OrderRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateOrder, arg.ID, arg.CustomerID, arg.Total)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createOrderItem = `INSERT INTO order_items (id, order_id, product_id, name, price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) CreateOrderItem(ctx context.Context, arg OrderItemRow) error {
	_, err := q.db.ExecContext(ctx, createOrderItem,
		arg.ID, arg.OrderID, arg.ProductID, arg.Name, arg.Price, arg.Quantity)
	return err
}

const deleteOrderItems = `DELETE FROM order_items WHERE order_id = $1`

func (q *Queries) DeleteOrderItems(ctx context.Context, orderID string) error {
	_, err := q.db.ExecContext(ctx, deleteOrderItems, orderID)
	return err
}

const selectOrder = `SELECT id, customer_id, total FROM orders`

func scanOrder(row interface{ Scan(...interface{}) error }) (OrderRow, error) {
	var o OrderRow
	err := row.Scan(&o.ID, &o.CustomerID, &o.Total)
	return o, err
}

func (q *Queries) GetOrder(ctx context.Context, id string) (OrderRow, error) {
	return scanOrder(q.db.QueryRowContext(ctx, selectOrder+` WHERE id = $1`, id))
}

func (q *Queries) ListOrders(ctx context.Context) ([]OrderRow, error) {
	rows, err := q.db.QueryContext(ctx, selectOrder+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderRow
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const listOrderItems = `SELECT id, order_id, product_id, name, price, quantity
FROM order_items WHERE order_id = $1 ORDER BY id`

func (q *Queries) ListOrderItems(ctx context.Context, orderID string) ([]OrderItemRow, error) {
	rows, err := q.db.QueryContext(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItemRow
	for rows.Next() {
		var i OrderItemRow
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Price, &i.Quantity); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
