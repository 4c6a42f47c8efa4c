// Package worker runs the background jobs of the server node,
// dispatching registered cross chain transfers to peer chains,
// confirming dispatched transfers as stable, and watching the
// peers directory for dynamically added peer chains.
package worker
