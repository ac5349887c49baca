// Package testutil holds helpers shared by clitools tests.
package testutil
