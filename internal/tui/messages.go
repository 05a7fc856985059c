package tui

import "github.com/Veraticus/limit-gauge/internal/model"

type designSavedMsg struct {
	design *model.Design
}

type errorMsg struct {
	err error
}
