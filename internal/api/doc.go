// Package api exposes the tree operations over HTTP for the console's tree
// widgets.
//
// The /v1/forest and /v1/flatten routes are stateless: every request carries
// the records (or the forest) it operates on. The /v1/forests routes work on
// named forests kept in a foreststore.Store, which the server may preload
// from its configured record source.
//
// Routes:
//
//	POST   /v1/forest                             build a forest from records or mapped rows
//	POST   /v1/forest/find?id=X                   build, then return the subtree rooted at X
//	POST   /v1/forest/options?exclude=X           build, then list valid parents for X
//	POST   /v1/flatten                            flatten a forest back into records
//	GET    /v1/forests                            list stored forests
//	PUT    /v1/forests/{name}                     build and store a forest
//	GET    /v1/forests/{name}                     stored forest
//	DELETE /v1/forests/{name}                     drop a stored forest
//	GET    /v1/forests/{name}/records             stored forest flattened
//	GET    /v1/forests/{name}/options?exclude=X   valid parents for X
//	GET    /v1/forests/{name}/nodes/{id}          subtree rooted at id
//	GET    /v1/forests/{name}/nodes/{id}/path     breadcrumb from the root to id
//	GET    /v1/forests/{name}/nodes/{id}/descendants ids below id
//	GET    /health                                liveness probe
package api
