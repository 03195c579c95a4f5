// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ivelina/tendril/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ivelina/tendril/ent/activesession"
	"github.com/ivelina/tendril/ent/behaviorday"
	"github.com/ivelina/tendril/ent/flowstate"
	"github.com/ivelina/tendril/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActiveSession is the client for interacting with the ActiveSession builders.
	ActiveSession *ActiveSessionClient
	// BehaviorDay is the client for interacting with the BehaviorDay builders.
	BehaviorDay *BehaviorDayClient
	// FlowState is the client for interacting with the FlowState builders.
	FlowState *FlowStateClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActiveSession = NewActiveSessionClient(c.config)
	c.BehaviorDay = NewBehaviorDayClient(c.config)
	c.FlowState = NewFlowStateClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		ActiveSession: NewActiveSessionClient(cfg),
		BehaviorDay:   NewBehaviorDayClient(cfg),
		FlowState:     NewFlowStateClient(cfg),
		SessionEvent:  NewSessionEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		ActiveSession: NewActiveSessionClient(cfg),
		BehaviorDay:   NewBehaviorDayClient(cfg),
		FlowState:     NewFlowStateClient(cfg),
		SessionEvent:  NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActiveSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ActiveSession.Use(hooks...)
	c.BehaviorDay.Use(hooks...)
	c.FlowState.Use(hooks...)
	c.SessionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ActiveSession.Intercept(interceptors...)
	c.BehaviorDay.Intercept(interceptors...)
	c.FlowState.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActiveSessionMutation:
		return c.ActiveSession.mutate(ctx, m)
	case *BehaviorDayMutation:
		return c.BehaviorDay.mutate(ctx, m)
	case *FlowStateMutation:
		return c.FlowState.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActiveSessionClient is a client for the ActiveSession schema.
type ActiveSessionClient struct {
	config
}

// NewActiveSessionClient returns a client for the ActiveSession from the given config.
func NewActiveSessionClient(c config) *ActiveSessionClient {
	return &ActiveSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activesession.Hooks(f(g(h())))`.
func (c *ActiveSessionClient) Use(hooks ...Hook) {
	c.hooks.ActiveSession = append(c.hooks.ActiveSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activesession.Intercept(f(g(h())))`.
func (c *ActiveSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActiveSession = append(c.inters.ActiveSession, interceptors...)
}

// Create returns a builder for creating a ActiveSession entity.
func (c *ActiveSessionClient) Create() *ActiveSessionCreate {
	mutation := newActiveSessionMutation(c.config, OpCreate)
	return &ActiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActiveSession entities.
func (c *ActiveSessionClient) CreateBulk(builders ...*ActiveSessionCreate) *ActiveSessionCreateBulk {
	return &ActiveSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActiveSessionClient) MapCreateBulk(slice any, setFunc func(*ActiveSessionCreate, int)) *ActiveSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActiveSessionCreateBulk{err: fmt.Errorf("calling to ActiveSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActiveSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActiveSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActiveSession.
func (c *ActiveSessionClient) Update() *ActiveSessionUpdate {
	mutation := newActiveSessionMutation(c.config, OpUpdate)
	return &ActiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActiveSessionClient) UpdateOne(_m *ActiveSession) *ActiveSessionUpdateOne {
	mutation := newActiveSessionMutation(c.config, OpUpdateOne, withActiveSession(_m))
	return &ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActiveSessionClient) UpdateOneID(id int) *ActiveSessionUpdateOne {
	mutation := newActiveSessionMutation(c.config, OpUpdateOne, withActiveSessionID(id))
	return &ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActiveSession.
func (c *ActiveSessionClient) Delete() *ActiveSessionDelete {
	mutation := newActiveSessionMutation(c.config, OpDelete)
	return &ActiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActiveSessionClient) DeleteOne(_m *ActiveSession) *ActiveSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActiveSessionClient) DeleteOneID(id int) *ActiveSessionDeleteOne {
	builder := c.Delete().Where(activesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActiveSessionDeleteOne{builder}
}

// Query returns a query builder for ActiveSession.
func (c *ActiveSessionClient) Query() *ActiveSessionQuery {
	return &ActiveSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActiveSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ActiveSession entity by its id.
func (c *ActiveSessionClient) Get(ctx context.Context, id int) (*ActiveSession, error) {
	return c.Query().Where(activesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActiveSessionClient) GetX(ctx context.Context, id int) *ActiveSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActiveSessionClient) Hooks() []Hook {
	return c.hooks.ActiveSession
}

// Interceptors returns the client interceptors.
func (c *ActiveSessionClient) Interceptors() []Interceptor {
	return c.inters.ActiveSession
}

func (c *ActiveSessionClient) mutate(ctx context.Context, m *ActiveSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActiveSession mutation op: %q", m.Op())
	}
}

// BehaviorDayClient is a client for the BehaviorDay schema.
type BehaviorDayClient struct {
	config
}

// NewBehaviorDayClient returns a client for the BehaviorDay from the given config.
func NewBehaviorDayClient(c config) *BehaviorDayClient {
	return &BehaviorDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `behaviorday.Hooks(f(g(h())))`.
func (c *BehaviorDayClient) Use(hooks ...Hook) {
	c.hooks.BehaviorDay = append(c.hooks.BehaviorDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `behaviorday.Intercept(f(g(h())))`.
func (c *BehaviorDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.BehaviorDay = append(c.inters.BehaviorDay, interceptors...)
}

// Create returns a builder for creating a BehaviorDay entity.
func (c *BehaviorDayClient) Create() *BehaviorDayCreate {
	mutation := newBehaviorDayMutation(c.config, OpCreate)
	return &BehaviorDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BehaviorDay entities.
func (c *BehaviorDayClient) CreateBulk(builders ...*BehaviorDayCreate) *BehaviorDayCreateBulk {
	return &BehaviorDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BehaviorDayClient) MapCreateBulk(slice any, setFunc func(*BehaviorDayCreate, int)) *BehaviorDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BehaviorDayCreateBulk{err: fmt.Errorf("calling to BehaviorDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BehaviorDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BehaviorDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BehaviorDay.
func (c *BehaviorDayClient) Update() *BehaviorDayUpdate {
	mutation := newBehaviorDayMutation(c.config, OpUpdate)
	return &BehaviorDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BehaviorDayClient) UpdateOne(_m *BehaviorDay) *BehaviorDayUpdateOne {
	mutation := newBehaviorDayMutation(c.config, OpUpdateOne, withBehaviorDay(_m))
	return &BehaviorDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BehaviorDayClient) UpdateOneID(id int) *BehaviorDayUpdateOne {
	mutation := newBehaviorDayMutation(c.config, OpUpdateOne, withBehaviorDayID(id))
	return &BehaviorDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BehaviorDay.
func (c *BehaviorDayClient) Delete() *BehaviorDayDelete {
	mutation := newBehaviorDayMutation(c.config, OpDelete)
	return &BehaviorDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BehaviorDayClient) DeleteOne(_m *BehaviorDay) *BehaviorDayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BehaviorDayClient) DeleteOneID(id int) *BehaviorDayDeleteOne {
	builder := c.Delete().Where(behaviorday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BehaviorDayDeleteOne{builder}
}

// Query returns a query builder for BehaviorDay.
func (c *BehaviorDayClient) Query() *BehaviorDayQuery {
	return &BehaviorDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBehaviorDay},
		inters: c.Interceptors(),
	}
}

// Get returns a BehaviorDay entity by its id.
func (c *BehaviorDayClient) Get(ctx context.Context, id int) (*BehaviorDay, error) {
	return c.Query().Where(behaviorday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BehaviorDayClient) GetX(ctx context.Context, id int) *BehaviorDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BehaviorDayClient) Hooks() []Hook {
	return c.hooks.BehaviorDay
}

// Interceptors returns the client interceptors.
func (c *BehaviorDayClient) Interceptors() []Interceptor {
	return c.inters.BehaviorDay
}

func (c *BehaviorDayClient) mutate(ctx context.Context, m *BehaviorDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BehaviorDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BehaviorDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BehaviorDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BehaviorDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BehaviorDay mutation op: %q", m.Op())
	}
}

// FlowStateClient is a client for the FlowState schema.
type FlowStateClient struct {
	config
}

// NewFlowStateClient returns a client for the FlowState from the given config.
func NewFlowStateClient(c config) *FlowStateClient {
	return &FlowStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flowstate.Hooks(f(g(h())))`.
func (c *FlowStateClient) Use(hooks ...Hook) {
	c.hooks.FlowState = append(c.hooks.FlowState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flowstate.Intercept(f(g(h())))`.
func (c *FlowStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlowState = append(c.inters.FlowState, interceptors...)
}

// Create returns a builder for creating a FlowState entity.
func (c *FlowStateClient) Create() *FlowStateCreate {
	mutation := newFlowStateMutation(c.config, OpCreate)
	return &FlowStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlowState entities.
func (c *FlowStateClient) CreateBulk(builders ...*FlowStateCreate) *FlowStateCreateBulk {
	return &FlowStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlowStateClient) MapCreateBulk(slice any, setFunc func(*FlowStateCreate, int)) *FlowStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlowStateCreateBulk{err: fmt.Errorf("calling to FlowStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlowStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlowStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlowState.
func (c *FlowStateClient) Update() *FlowStateUpdate {
	mutation := newFlowStateMutation(c.config, OpUpdate)
	return &FlowStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlowStateClient) UpdateOne(_m *FlowState) *FlowStateUpdateOne {
	mutation := newFlowStateMutation(c.config, OpUpdateOne, withFlowState(_m))
	return &FlowStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlowStateClient) UpdateOneID(id int) *FlowStateUpdateOne {
	mutation := newFlowStateMutation(c.config, OpUpdateOne, withFlowStateID(id))
	return &FlowStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlowState.
func (c *FlowStateClient) Delete() *FlowStateDelete {
	mutation := newFlowStateMutation(c.config, OpDelete)
	return &FlowStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlowStateClient) DeleteOne(_m *FlowState) *FlowStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlowStateClient) DeleteOneID(id int) *FlowStateDeleteOne {
	builder := c.Delete().Where(flowstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlowStateDeleteOne{builder}
}

// Query returns a query builder for FlowState.
func (c *FlowStateClient) Query() *FlowStateQuery {
	return &FlowStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlowState},
		inters: c.Interceptors(),
	}
}

// Get returns a FlowState entity by its id.
func (c *FlowStateClient) Get(ctx context.Context, id int) (*FlowState, error) {
	return c.Query().Where(flowstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlowStateClient) GetX(ctx context.Context, id int) *FlowState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlowStateClient) Hooks() []Hook {
	return c.hooks.FlowState
}

// Interceptors returns the client interceptors.
func (c *FlowStateClient) Interceptors() []Interceptor {
	return c.inters.FlowState
}

func (c *FlowStateClient) mutate(ctx context.Context, m *FlowStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlowStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlowStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlowStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlowStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlowState mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActiveSession, BehaviorDay, FlowState, SessionEvent []ent.Hook
	}
	inters struct {
		ActiveSession, BehaviorDay, FlowState, SessionEvent []ent.Interceptor
	}
)
