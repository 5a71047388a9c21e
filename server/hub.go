package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fvm1d/calculator"
	"fvm1d/model"
)

// Hub 每个 websocket 连接一个，接收请求并返回计算结果
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	rod  model.Rod // 当前算例，env 消息更新
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(c calculator.Calculator, rod model.Rod) *Hub {
	return &Hub{
		c:     c,
		rod:   rod,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.reply <- h.dispatch(msg)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("写入响应失败")
			}
		case <-h.done:
			return
		}
	}
}

// dispatch 处理一条请求消息并生成响应
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgEnv:
		var rod model.Rod
		if err := json.Unmarshal([]byte(msg.Content), &rod); err != nil {
			return errorMsg(err)
		}
		h.rod = rod
		log.WithFields(log.Fields{
			"length": rod.Length,
			"cells":  rod.Cells,
			"ta":     rod.TA,
			"tb":     rod.TB,
		}).Info("设置算例")
		return model.Msg{Type: model.MsgEnvSet, Content: "env is set"}
	case model.MsgStart:
		res, err := h.c.Calculate(h.rod)
		if err != nil {
			return errorMsg(err)
		}
		data, err := json.Marshal(res.Profile)
		if err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: model.MsgStarted, Content: string(data)}
	case model.MsgStop:
		return model.Msg{Type: model.MsgStopped, Content: "stopped"}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{Type: model.MsgError, Content: "no such type: " + msg.Type}
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.MsgError, Content: err.Error()}
}
