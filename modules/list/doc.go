// Package list is the in-memory list manager module. It owns the item
// store, the transient security alert and the wiring of the validation
// pipeline, and exposes the whole thing over a chi router.
//
// Every mutation - add, update, delete - flows through the secure pipeline
// before state changes: rejected input never touches the store, invalid
// identifiers never index into it, and every outcome lands in the audit
// sink. Items live only in process memory and vanish on restart; there is
// no persistence layer to configure.
//
//	cfg := config.MustLoad[list.Config]()
//	auditor, _ := audit.NewLogger(audit.NewSlogStorage(log))
//	svc, err := list.NewService(cfg, auditor)
//	r.Mount("/items", list.Router(svc))
package list
