package config

// Import all stores to register them
import (
	_ "github.com/rediwo/tweenlog/sink/mongostore"
	_ "github.com/rediwo/tweenlog/sink/sqlstore"
)
