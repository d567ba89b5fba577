package rengsub

import (
	"github.com/go-logr/logr"

	"github.com/KeeperCyclone/rengsub/dialect"
)

// Option configures an Engine at compile time.
type Option interface {
	SetOption(c *config) error
}

type config struct {
	dialect string
	compile dialect.Compiler
	log     logr.Logger
}

func defaultConfig() *config {
	return &config{
		dialect: dialect.Default,
		compile: dialect.Coregex,
		log:     logr.Discard(),
	}
}

// Logger sets the logger used for debug output. Compilation is logged at
// V(1) and each splice at V(2). The default discards everything.
func Logger(logger logr.Logger) Option {
	return &loggerOption{l: logger}
}

type loggerOption struct {
	l logr.Logger
}

func (o *loggerOption) SetOption(c *config) error {
	c.log = o.l
	return nil
}

// Dialect selects a registered regex dialect by name; see dialect.Names.
func Dialect(name string) Option {
	return &dialectOption{name: name}
}

type dialectOption struct {
	name string
}

func (o *dialectOption) SetOption(c *config) error {
	compile, err := dialect.Lookup(o.name)
	if err != nil {
		return err
	}
	c.compile = compile
	c.dialect = o.name
	if c.dialect == "" {
		c.dialect = dialect.Default
	}
	return nil
}

// Compiler sets the function used to compile patterns, for dialects that
// are not registered by name.
func Compiler(compile dialect.Compiler) Option {
	return &compilerOption{compile: compile}
}

type compilerOption struct {
	compile dialect.Compiler
}

func (o *compilerOption) SetOption(c *config) error {
	c.compile = o.compile
	c.dialect = "custom"
	return nil
}
