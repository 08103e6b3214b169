// Package registry collects the functions available to remapping scripts.
//
// Every module under modules/ implements Module and contributes one or more
// cty functions. The app registers the compiled-in modules once at startup;
// Validate then checks that every name is callable from HCL before the
// function table is handed to the loader.
package registry
