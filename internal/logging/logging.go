// Package logging sets up the pipeline's structured logger.
package logging

import "github.com/sirupsen/logrus"

// New returns a logrus logger configured with the given level name,
// falling back to info on an unrecognized level rather than failing
// startup over a typo in a config file.
func New(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
