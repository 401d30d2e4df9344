// Command coffeeschedule is the CLI front-end for the batch scheduling
// engine. It lives entirely outside internal/scheduling: it reads
// contacts and busy intervals from files, calls the pure engine, records
// the run in history, and renders the result — the engine itself never
// touches a file, a flag, or a log line.
package main

import "github.com/meet-when/coffee-scheduler/cmd/coffeeschedule/cli"

func main() {
	cli.Execute()
}
