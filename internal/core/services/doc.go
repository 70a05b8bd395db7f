// Package services implements the driving ports: catalog lifecycle,
// keyword routing, document loading and usage stats. Each service
// reaches infrastructure only through the driven port interfaces, and
// none of them imports anything outside the standard library and the
// core packages.
package services
