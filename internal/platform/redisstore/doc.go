// Package redisstore implements the store interfaces on Redis.
//
// Keys:
//
//	flashdeck:deck:<name>  deck JSON, claimed with SETNX
//	flashdeck:decks        list of deck names in creation order
//	flashdeck:scores       list of score JSON in recording order
package redisstore
