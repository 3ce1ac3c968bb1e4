// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/benkyo/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/ent/quizresult"
	"github.com/abhisek/benkyo/ent/studysession"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/abhisek/benkyo/ent/userachievement"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FlashcardReview is the client for interacting with the FlashcardReview builders.
	FlashcardReview *FlashcardReviewClient
	// QuizResult is the client for interacting with the QuizResult builders.
	QuizResult *QuizResultClient
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
	// TopicProgress is the client for interacting with the TopicProgress builders.
	TopicProgress *TopicProgressClient
	// UserAchievement is the client for interacting with the UserAchievement builders.
	UserAchievement *UserAchievementClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FlashcardReview = NewFlashcardReviewClient(c.config)
	c.QuizResult = NewQuizResultClient(c.config)
	c.StudySession = NewStudySessionClient(c.config)
	c.TopicProgress = NewTopicProgressClient(c.config)
	c.UserAchievement = NewUserAchievementClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		FlashcardReview: NewFlashcardReviewClient(cfg),
		QuizResult:      NewQuizResultClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
		TopicProgress:   NewTopicProgressClient(cfg),
		UserAchievement: NewUserAchievementClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		FlashcardReview: NewFlashcardReviewClient(cfg),
		QuizResult:      NewQuizResultClient(cfg),
		StudySession:    NewStudySessionClient(cfg),
		TopicProgress:   NewTopicProgressClient(cfg),
		UserAchievement: NewUserAchievementClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FlashcardReview.
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
	c.FlashcardReview.Use(hooks...)
	c.QuizResult.Use(hooks...)
	c.StudySession.Use(hooks...)
	c.TopicProgress.Use(hooks...)
	c.UserAchievement.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FlashcardReview.Intercept(interceptors...)
	c.QuizResult.Intercept(interceptors...)
	c.StudySession.Intercept(interceptors...)
	c.TopicProgress.Intercept(interceptors...)
	c.UserAchievement.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FlashcardReviewMutation:
		return c.FlashcardReview.mutate(ctx, m)
	case *QuizResultMutation:
		return c.QuizResult.mutate(ctx, m)
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	case *TopicProgressMutation:
		return c.TopicProgress.mutate(ctx, m)
	case *UserAchievementMutation:
		return c.UserAchievement.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FlashcardReviewClient is a client for the FlashcardReview schema.
type FlashcardReviewClient struct {
	config
}

// NewFlashcardReviewClient returns a client for the FlashcardReview from the given config.
func NewFlashcardReviewClient(c config) *FlashcardReviewClient {
	return &FlashcardReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flashcardreview.Hooks(f(g(h())))`.
func (c *FlashcardReviewClient) Use(hooks ...Hook) {
	c.hooks.FlashcardReview = append(c.hooks.FlashcardReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flashcardreview.Intercept(f(g(h())))`.
func (c *FlashcardReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlashcardReview = append(c.inters.FlashcardReview, interceptors...)
}

// Create returns a builder for creating a FlashcardReview entity.
func (c *FlashcardReviewClient) Create() *FlashcardReviewCreate {
	mutation := newFlashcardReviewMutation(c.config, OpCreate)
	return &FlashcardReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlashcardReview entities.
func (c *FlashcardReviewClient) CreateBulk(builders ...*FlashcardReviewCreate) *FlashcardReviewCreateBulk {
	return &FlashcardReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlashcardReviewClient) MapCreateBulk(slice any, setFunc func(*FlashcardReviewCreate, int)) *FlashcardReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlashcardReviewCreateBulk{err: fmt.Errorf("calling to FlashcardReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlashcardReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlashcardReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlashcardReview.
func (c *FlashcardReviewClient) Update() *FlashcardReviewUpdate {
	mutation := newFlashcardReviewMutation(c.config, OpUpdate)
	return &FlashcardReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlashcardReviewClient) UpdateOne(fr *FlashcardReview) *FlashcardReviewUpdateOne {
	mutation := newFlashcardReviewMutation(c.config, OpUpdateOne, withFlashcardReview(fr))
	return &FlashcardReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlashcardReviewClient) UpdateOneID(id int) *FlashcardReviewUpdateOne {
	mutation := newFlashcardReviewMutation(c.config, OpUpdateOne, withFlashcardReviewID(id))
	return &FlashcardReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlashcardReview.
func (c *FlashcardReviewClient) Delete() *FlashcardReviewDelete {
	mutation := newFlashcardReviewMutation(c.config, OpDelete)
	return &FlashcardReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlashcardReviewClient) DeleteOne(fr *FlashcardReview) *FlashcardReviewDeleteOne {
	return c.DeleteOneID(fr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlashcardReviewClient) DeleteOneID(id int) *FlashcardReviewDeleteOne {
	builder := c.Delete().Where(flashcardreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlashcardReviewDeleteOne{builder}
}

// Query returns a query builder for FlashcardReview.
func (c *FlashcardReviewClient) Query() *FlashcardReviewQuery {
	return &FlashcardReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlashcardReview},
		inters: c.Interceptors(),
	}
}

// Get returns a FlashcardReview entity by its id.
func (c *FlashcardReviewClient) Get(ctx context.Context, id int) (*FlashcardReview, error) {
	return c.Query().Where(flashcardreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlashcardReviewClient) GetX(ctx context.Context, id int) *FlashcardReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlashcardReviewClient) Hooks() []Hook {
	return c.hooks.FlashcardReview
}

// Interceptors returns the client interceptors.
func (c *FlashcardReviewClient) Interceptors() []Interceptor {
	return c.inters.FlashcardReview
}

func (c *FlashcardReviewClient) mutate(ctx context.Context, m *FlashcardReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlashcardReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlashcardReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlashcardReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlashcardReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlashcardReview mutation op: %q", m.Op())
	}
}

// QuizResultClient is a client for the QuizResult schema.
type QuizResultClient struct {
	config
}

// NewQuizResultClient returns a client for the QuizResult from the given config.
func NewQuizResultClient(c config) *QuizResultClient {
	return &QuizResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizresult.Hooks(f(g(h())))`.
func (c *QuizResultClient) Use(hooks ...Hook) {
	c.hooks.QuizResult = append(c.hooks.QuizResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizresult.Intercept(f(g(h())))`.
func (c *QuizResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizResult = append(c.inters.QuizResult, interceptors...)
}

// Create returns a builder for creating a QuizResult entity.
func (c *QuizResultClient) Create() *QuizResultCreate {
	mutation := newQuizResultMutation(c.config, OpCreate)
	return &QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizResult entities.
func (c *QuizResultClient) CreateBulk(builders ...*QuizResultCreate) *QuizResultCreateBulk {
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizResultClient) MapCreateBulk(slice any, setFunc func(*QuizResultCreate, int)) *QuizResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizResultCreateBulk{err: fmt.Errorf("calling to QuizResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizResult.
func (c *QuizResultClient) Update() *QuizResultUpdate {
	mutation := newQuizResultMutation(c.config, OpUpdate)
	return &QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizResultClient) UpdateOne(qr *QuizResult) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResult(qr))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizResultClient) UpdateOneID(id int) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResultID(id))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizResult.
func (c *QuizResultClient) Delete() *QuizResultDelete {
	mutation := newQuizResultMutation(c.config, OpDelete)
	return &QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizResultClient) DeleteOne(qr *QuizResult) *QuizResultDeleteOne {
	return c.DeleteOneID(qr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizResultClient) DeleteOneID(id int) *QuizResultDeleteOne {
	builder := c.Delete().Where(quizresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizResultDeleteOne{builder}
}

// Query returns a query builder for QuizResult.
func (c *QuizResultClient) Query() *QuizResultQuery {
	return &QuizResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizResult},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizResult entity by its id.
func (c *QuizResultClient) Get(ctx context.Context, id int) (*QuizResult, error) {
	return c.Query().Where(quizresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizResultClient) GetX(ctx context.Context, id int) *QuizResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizResultClient) Hooks() []Hook {
	return c.hooks.QuizResult
}

// Interceptors returns the client interceptors.
func (c *QuizResultClient) Interceptors() []Interceptor {
	return c.inters.QuizResult
}

func (c *QuizResultClient) mutate(ctx context.Context, m *QuizResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizResult mutation op: %q", m.Op())
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(ss *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(ss))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id int) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(ss *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(ss.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id int) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id int) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id int) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// TopicProgressClient is a client for the TopicProgress schema.
type TopicProgressClient struct {
	config
}

// NewTopicProgressClient returns a client for the TopicProgress from the given config.
func NewTopicProgressClient(c config) *TopicProgressClient {
	return &TopicProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicprogress.Hooks(f(g(h())))`.
func (c *TopicProgressClient) Use(hooks ...Hook) {
	c.hooks.TopicProgress = append(c.hooks.TopicProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicprogress.Intercept(f(g(h())))`.
func (c *TopicProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicProgress = append(c.inters.TopicProgress, interceptors...)
}

// Create returns a builder for creating a TopicProgress entity.
func (c *TopicProgressClient) Create() *TopicProgressCreate {
	mutation := newTopicProgressMutation(c.config, OpCreate)
	return &TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicProgress entities.
func (c *TopicProgressClient) CreateBulk(builders ...*TopicProgressCreate) *TopicProgressCreateBulk {
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicProgressClient) MapCreateBulk(slice any, setFunc func(*TopicProgressCreate, int)) *TopicProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicProgressCreateBulk{err: fmt.Errorf("calling to TopicProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicProgress.
func (c *TopicProgressClient) Update() *TopicProgressUpdate {
	mutation := newTopicProgressMutation(c.config, OpUpdate)
	return &TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicProgressClient) UpdateOne(tp *TopicProgress) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgress(tp))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicProgressClient) UpdateOneID(id int) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgressID(id))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicProgress.
func (c *TopicProgressClient) Delete() *TopicProgressDelete {
	mutation := newTopicProgressMutation(c.config, OpDelete)
	return &TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicProgressClient) DeleteOne(tp *TopicProgress) *TopicProgressDeleteOne {
	return c.DeleteOneID(tp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicProgressClient) DeleteOneID(id int) *TopicProgressDeleteOne {
	builder := c.Delete().Where(topicprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicProgressDeleteOne{builder}
}

// Query returns a query builder for TopicProgress.
func (c *TopicProgressClient) Query() *TopicProgressQuery {
	return &TopicProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicProgress entity by its id.
func (c *TopicProgressClient) Get(ctx context.Context, id int) (*TopicProgress, error) {
	return c.Query().Where(topicprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicProgressClient) GetX(ctx context.Context, id int) *TopicProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicProgressClient) Hooks() []Hook {
	return c.hooks.TopicProgress
}

// Interceptors returns the client interceptors.
func (c *TopicProgressClient) Interceptors() []Interceptor {
	return c.inters.TopicProgress
}

func (c *TopicProgressClient) mutate(ctx context.Context, m *TopicProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicProgress mutation op: %q", m.Op())
	}
}

// UserAchievementClient is a client for the UserAchievement schema.
type UserAchievementClient struct {
	config
}

// NewUserAchievementClient returns a client for the UserAchievement from the given config.
func NewUserAchievementClient(c config) *UserAchievementClient {
	return &UserAchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userachievement.Hooks(f(g(h())))`.
func (c *UserAchievementClient) Use(hooks ...Hook) {
	c.hooks.UserAchievement = append(c.hooks.UserAchievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userachievement.Intercept(f(g(h())))`.
func (c *UserAchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserAchievement = append(c.inters.UserAchievement, interceptors...)
}

// Create returns a builder for creating a UserAchievement entity.
func (c *UserAchievementClient) Create() *UserAchievementCreate {
	mutation := newUserAchievementMutation(c.config, OpCreate)
	return &UserAchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserAchievement entities.
func (c *UserAchievementClient) CreateBulk(builders ...*UserAchievementCreate) *UserAchievementCreateBulk {
	return &UserAchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserAchievementClient) MapCreateBulk(slice any, setFunc func(*UserAchievementCreate, int)) *UserAchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserAchievementCreateBulk{err: fmt.Errorf("calling to UserAchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserAchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserAchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserAchievement.
func (c *UserAchievementClient) Update() *UserAchievementUpdate {
	mutation := newUserAchievementMutation(c.config, OpUpdate)
	return &UserAchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserAchievementClient) UpdateOne(ua *UserAchievement) *UserAchievementUpdateOne {
	mutation := newUserAchievementMutation(c.config, OpUpdateOne, withUserAchievement(ua))
	return &UserAchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserAchievementClient) UpdateOneID(id int) *UserAchievementUpdateOne {
	mutation := newUserAchievementMutation(c.config, OpUpdateOne, withUserAchievementID(id))
	return &UserAchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserAchievement.
func (c *UserAchievementClient) Delete() *UserAchievementDelete {
	mutation := newUserAchievementMutation(c.config, OpDelete)
	return &UserAchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserAchievementClient) DeleteOne(ua *UserAchievement) *UserAchievementDeleteOne {
	return c.DeleteOneID(ua.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserAchievementClient) DeleteOneID(id int) *UserAchievementDeleteOne {
	builder := c.Delete().Where(userachievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserAchievementDeleteOne{builder}
}

// Query returns a query builder for UserAchievement.
func (c *UserAchievementClient) Query() *UserAchievementQuery {
	return &UserAchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a UserAchievement entity by its id.
func (c *UserAchievementClient) Get(ctx context.Context, id int) (*UserAchievement, error) {
	return c.Query().Where(userachievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserAchievementClient) GetX(ctx context.Context, id int) *UserAchievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserAchievementClient) Hooks() []Hook {
	return c.hooks.UserAchievement
}

// Interceptors returns the client interceptors.
func (c *UserAchievementClient) Interceptors() []Interceptor {
	return c.inters.UserAchievement
}

func (c *UserAchievementClient) mutate(ctx context.Context, m *UserAchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserAchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserAchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserAchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserAchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserAchievement mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FlashcardReview, QuizResult, StudySession, TopicProgress,
		UserAchievement []ent.Hook
	}
	inters struct {
		FlashcardReview, QuizResult, StudySession, TopicProgress,
		UserAchievement []ent.Interceptor
	}
)
