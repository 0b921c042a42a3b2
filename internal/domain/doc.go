// Package domain contains the core records of the application: rooms with
// their cutouts, segments and partitions, apartments that aggregate rooms,
// and the weather enumeration that selects a material-loss policy.
//
// The records are plain values. Area and material computations over them live
// in the area subpackage.
package domain
