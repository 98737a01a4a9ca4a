// Package eventcatalogservice maintains the historical event catalog:
// CSV file import with hot reload, schema-validated JSON batch import,
// and filtered listings consumed by the timeline engine.
package eventcatalogservice
