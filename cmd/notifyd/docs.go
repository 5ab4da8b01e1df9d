package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           notifyd API
// @version         1.0
// @description     HTTP surface over the in-process notification hub.
//
// @contact.name   notifyd maintainers
// @contact.url    https://github.com/your-org/notifyd
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
