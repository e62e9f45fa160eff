// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ragweave/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ragweave/maestro/ent/agentperformance"
	"github.com/ragweave/maestro/ent/dagtemplate"
	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentPerformance is the client for interacting with the AgentPerformance builders.
	AgentPerformance *AgentPerformanceClient
	// DagTemplate is the client for interacting with the DagTemplate builders.
	DagTemplate *DagTemplateClient
	// StageTransition is the client for interacting with the StageTransition builders.
	StageTransition *StageTransitionClient
	// TaskHistory is the client for interacting with the TaskHistory builders.
	TaskHistory *TaskHistoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentPerformance = NewAgentPerformanceClient(c.config)
	c.DagTemplate = NewDagTemplateClient(c.config)
	c.StageTransition = NewStageTransitionClient(c.config)
	c.TaskHistory = NewTaskHistoryClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AgentPerformance: NewAgentPerformanceClient(cfg),
		DagTemplate:      NewDagTemplateClient(cfg),
		StageTransition:  NewStageTransitionClient(cfg),
		TaskHistory:      NewTaskHistoryClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AgentPerformance: NewAgentPerformanceClient(cfg),
		DagTemplate:      NewDagTemplateClient(cfg),
		StageTransition:  NewStageTransitionClient(cfg),
		TaskHistory:      NewTaskHistoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentPerformance.
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
	c.AgentPerformance.Use(hooks...)
	c.DagTemplate.Use(hooks...)
	c.StageTransition.Use(hooks...)
	c.TaskHistory.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentPerformance.Intercept(interceptors...)
	c.DagTemplate.Intercept(interceptors...)
	c.StageTransition.Intercept(interceptors...)
	c.TaskHistory.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentPerformanceMutation:
		return c.AgentPerformance.mutate(ctx, m)
	case *DagTemplateMutation:
		return c.DagTemplate.mutate(ctx, m)
	case *StageTransitionMutation:
		return c.StageTransition.mutate(ctx, m)
	case *TaskHistoryMutation:
		return c.TaskHistory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentPerformanceClient is a client for the AgentPerformance schema.
type AgentPerformanceClient struct {
	config
}

// NewAgentPerformanceClient returns a client for the AgentPerformance from the given config.
func NewAgentPerformanceClient(c config) *AgentPerformanceClient {
	return &AgentPerformanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentperformance.Hooks(f(g(h())))`.
func (c *AgentPerformanceClient) Use(hooks ...Hook) {
	c.hooks.AgentPerformance = append(c.hooks.AgentPerformance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentperformance.Intercept(f(g(h())))`.
func (c *AgentPerformanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPerformance = append(c.inters.AgentPerformance, interceptors...)
}

// Create returns a builder for creating a AgentPerformance entity.
func (c *AgentPerformanceClient) Create() *AgentPerformanceCreate {
	mutation := newAgentPerformanceMutation(c.config, OpCreate)
	return &AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPerformance entities.
func (c *AgentPerformanceClient) CreateBulk(builders ...*AgentPerformanceCreate) *AgentPerformanceCreateBulk {
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPerformanceClient) MapCreateBulk(slice any, setFunc func(*AgentPerformanceCreate, int)) *AgentPerformanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPerformanceCreateBulk{err: fmt.Errorf("calling to AgentPerformanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPerformanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPerformance.
func (c *AgentPerformanceClient) Update() *AgentPerformanceUpdate {
	mutation := newAgentPerformanceMutation(c.config, OpUpdate)
	return &AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPerformanceClient) UpdateOne(_m *AgentPerformance) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformance(_m))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPerformanceClient) UpdateOneID(id int) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformanceID(id))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPerformance.
func (c *AgentPerformanceClient) Delete() *AgentPerformanceDelete {
	mutation := newAgentPerformanceMutation(c.config, OpDelete)
	return &AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPerformanceClient) DeleteOne(_m *AgentPerformance) *AgentPerformanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPerformanceClient) DeleteOneID(id int) *AgentPerformanceDeleteOne {
	builder := c.Delete().Where(agentperformance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPerformanceDeleteOne{builder}
}

// Query returns a query builder for AgentPerformance.
func (c *AgentPerformanceClient) Query() *AgentPerformanceQuery {
	return &AgentPerformanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPerformance},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPerformance entity by its id.
func (c *AgentPerformanceClient) Get(ctx context.Context, id int) (*AgentPerformance, error) {
	return c.Query().Where(agentperformance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPerformanceClient) GetX(ctx context.Context, id int) *AgentPerformance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentPerformanceClient) Hooks() []Hook {
	return c.hooks.AgentPerformance
}

// Interceptors returns the client interceptors.
func (c *AgentPerformanceClient) Interceptors() []Interceptor {
	return c.inters.AgentPerformance
}

func (c *AgentPerformanceClient) mutate(ctx context.Context, m *AgentPerformanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPerformance mutation op: %q", m.Op())
	}
}

// DagTemplateClient is a client for the DagTemplate schema.
type DagTemplateClient struct {
	config
}

// NewDagTemplateClient returns a client for the DagTemplate from the given config.
func NewDagTemplateClient(c config) *DagTemplateClient {
	return &DagTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dagtemplate.Hooks(f(g(h())))`.
func (c *DagTemplateClient) Use(hooks ...Hook) {
	c.hooks.DagTemplate = append(c.hooks.DagTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dagtemplate.Intercept(f(g(h())))`.
func (c *DagTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.DagTemplate = append(c.inters.DagTemplate, interceptors...)
}

// Create returns a builder for creating a DagTemplate entity.
func (c *DagTemplateClient) Create() *DagTemplateCreate {
	mutation := newDagTemplateMutation(c.config, OpCreate)
	return &DagTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DagTemplate entities.
func (c *DagTemplateClient) CreateBulk(builders ...*DagTemplateCreate) *DagTemplateCreateBulk {
	return &DagTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DagTemplateClient) MapCreateBulk(slice any, setFunc func(*DagTemplateCreate, int)) *DagTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DagTemplateCreateBulk{err: fmt.Errorf("calling to DagTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DagTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DagTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DagTemplate.
func (c *DagTemplateClient) Update() *DagTemplateUpdate {
	mutation := newDagTemplateMutation(c.config, OpUpdate)
	return &DagTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DagTemplateClient) UpdateOne(_m *DagTemplate) *DagTemplateUpdateOne {
	mutation := newDagTemplateMutation(c.config, OpUpdateOne, withDagTemplate(_m))
	return &DagTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DagTemplateClient) UpdateOneID(id int) *DagTemplateUpdateOne {
	mutation := newDagTemplateMutation(c.config, OpUpdateOne, withDagTemplateID(id))
	return &DagTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DagTemplate.
func (c *DagTemplateClient) Delete() *DagTemplateDelete {
	mutation := newDagTemplateMutation(c.config, OpDelete)
	return &DagTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DagTemplateClient) DeleteOne(_m *DagTemplate) *DagTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DagTemplateClient) DeleteOneID(id int) *DagTemplateDeleteOne {
	builder := c.Delete().Where(dagtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DagTemplateDeleteOne{builder}
}

// Query returns a query builder for DagTemplate.
func (c *DagTemplateClient) Query() *DagTemplateQuery {
	return &DagTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDagTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a DagTemplate entity by its id.
func (c *DagTemplateClient) Get(ctx context.Context, id int) (*DagTemplate, error) {
	return c.Query().Where(dagtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DagTemplateClient) GetX(ctx context.Context, id int) *DagTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DagTemplateClient) Hooks() []Hook {
	return c.hooks.DagTemplate
}

// Interceptors returns the client interceptors.
func (c *DagTemplateClient) Interceptors() []Interceptor {
	return c.inters.DagTemplate
}

func (c *DagTemplateClient) mutate(ctx context.Context, m *DagTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DagTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DagTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DagTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DagTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DagTemplate mutation op: %q", m.Op())
	}
}

// StageTransitionClient is a client for the StageTransition schema.
type StageTransitionClient struct {
	config
}

// NewStageTransitionClient returns a client for the StageTransition from the given config.
func NewStageTransitionClient(c config) *StageTransitionClient {
	return &StageTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagetransition.Hooks(f(g(h())))`.
func (c *StageTransitionClient) Use(hooks ...Hook) {
	c.hooks.StageTransition = append(c.hooks.StageTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagetransition.Intercept(f(g(h())))`.
func (c *StageTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageTransition = append(c.inters.StageTransition, interceptors...)
}

// Create returns a builder for creating a StageTransition entity.
func (c *StageTransitionClient) Create() *StageTransitionCreate {
	mutation := newStageTransitionMutation(c.config, OpCreate)
	return &StageTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageTransition entities.
func (c *StageTransitionClient) CreateBulk(builders ...*StageTransitionCreate) *StageTransitionCreateBulk {
	return &StageTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageTransitionClient) MapCreateBulk(slice any, setFunc func(*StageTransitionCreate, int)) *StageTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageTransitionCreateBulk{err: fmt.Errorf("calling to StageTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageTransition.
func (c *StageTransitionClient) Update() *StageTransitionUpdate {
	mutation := newStageTransitionMutation(c.config, OpUpdate)
	return &StageTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageTransitionClient) UpdateOne(_m *StageTransition) *StageTransitionUpdateOne {
	mutation := newStageTransitionMutation(c.config, OpUpdateOne, withStageTransition(_m))
	return &StageTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageTransitionClient) UpdateOneID(id int) *StageTransitionUpdateOne {
	mutation := newStageTransitionMutation(c.config, OpUpdateOne, withStageTransitionID(id))
	return &StageTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageTransition.
func (c *StageTransitionClient) Delete() *StageTransitionDelete {
	mutation := newStageTransitionMutation(c.config, OpDelete)
	return &StageTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageTransitionClient) DeleteOne(_m *StageTransition) *StageTransitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageTransitionClient) DeleteOneID(id int) *StageTransitionDeleteOne {
	builder := c.Delete().Where(stagetransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageTransitionDeleteOne{builder}
}

// Query returns a query builder for StageTransition.
func (c *StageTransitionClient) Query() *StageTransitionQuery {
	return &StageTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a StageTransition entity by its id.
func (c *StageTransitionClient) Get(ctx context.Context, id int) (*StageTransition, error) {
	return c.Query().Where(stagetransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageTransitionClient) GetX(ctx context.Context, id int) *StageTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StageTransitionClient) Hooks() []Hook {
	return c.hooks.StageTransition
}

// Interceptors returns the client interceptors.
func (c *StageTransitionClient) Interceptors() []Interceptor {
	return c.inters.StageTransition
}

func (c *StageTransitionClient) mutate(ctx context.Context, m *StageTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageTransition mutation op: %q", m.Op())
	}
}

// TaskHistoryClient is a client for the TaskHistory schema.
type TaskHistoryClient struct {
	config
}

// NewTaskHistoryClient returns a client for the TaskHistory from the given config.
func NewTaskHistoryClient(c config) *TaskHistoryClient {
	return &TaskHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskhistory.Hooks(f(g(h())))`.
func (c *TaskHistoryClient) Use(hooks ...Hook) {
	c.hooks.TaskHistory = append(c.hooks.TaskHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskhistory.Intercept(f(g(h())))`.
func (c *TaskHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskHistory = append(c.inters.TaskHistory, interceptors...)
}

// Create returns a builder for creating a TaskHistory entity.
func (c *TaskHistoryClient) Create() *TaskHistoryCreate {
	mutation := newTaskHistoryMutation(c.config, OpCreate)
	return &TaskHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskHistory entities.
func (c *TaskHistoryClient) CreateBulk(builders ...*TaskHistoryCreate) *TaskHistoryCreateBulk {
	return &TaskHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskHistoryClient) MapCreateBulk(slice any, setFunc func(*TaskHistoryCreate, int)) *TaskHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskHistoryCreateBulk{err: fmt.Errorf("calling to TaskHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskHistory.
func (c *TaskHistoryClient) Update() *TaskHistoryUpdate {
	mutation := newTaskHistoryMutation(c.config, OpUpdate)
	return &TaskHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskHistoryClient) UpdateOne(_m *TaskHistory) *TaskHistoryUpdateOne {
	mutation := newTaskHistoryMutation(c.config, OpUpdateOne, withTaskHistory(_m))
	return &TaskHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskHistoryClient) UpdateOneID(id int) *TaskHistoryUpdateOne {
	mutation := newTaskHistoryMutation(c.config, OpUpdateOne, withTaskHistoryID(id))
	return &TaskHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskHistory.
func (c *TaskHistoryClient) Delete() *TaskHistoryDelete {
	mutation := newTaskHistoryMutation(c.config, OpDelete)
	return &TaskHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskHistoryClient) DeleteOne(_m *TaskHistory) *TaskHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskHistoryClient) DeleteOneID(id int) *TaskHistoryDeleteOne {
	builder := c.Delete().Where(taskhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskHistoryDeleteOne{builder}
}

// Query returns a query builder for TaskHistory.
func (c *TaskHistoryClient) Query() *TaskHistoryQuery {
	return &TaskHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskHistory entity by its id.
func (c *TaskHistoryClient) Get(ctx context.Context, id int) (*TaskHistory, error) {
	return c.Query().Where(taskhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskHistoryClient) GetX(ctx context.Context, id int) *TaskHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskHistoryClient) Hooks() []Hook {
	return c.hooks.TaskHistory
}

// Interceptors returns the client interceptors.
func (c *TaskHistoryClient) Interceptors() []Interceptor {
	return c.inters.TaskHistory
}

func (c *TaskHistoryClient) mutate(ctx context.Context, m *TaskHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskHistory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentPerformance, DagTemplate, StageTransition, TaskHistory []ent.Hook
	}
	inters struct {
		AgentPerformance, DagTemplate, StageTransition, TaskHistory []ent.Interceptor
	}
)
