package mq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// RecordEvent 表示一条已确认的链上记录，供下游入库服务消费。
// public_id 即创建记录时生成的一次性身份公钥。
type RecordEvent struct {
	Kind      string `json:"kind"`
	PublicID  string `json:"public_id"`
	TxID      string `json:"tx_id"`
	Level     string `json:"level"`
	Timestamp int64  `json:"timestamp"`
}

// RecordPublisher 将确认事件发送到固定 topic，按 public_id 分区保证同记录有序
type RecordPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewRecordPublisher(producer *kafka.Producer, topic string) *RecordPublisher {
	return &RecordPublisher{producer: producer, topic: topic}
}

// Publish 同步发送并等待 broker ack
func (p *RecordPublisher) Publish(ev RecordEvent) error {
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().Unix()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal record event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(ev.PublicID),
		Value:          payload,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce record event: %w", err)
	}

	e := <-deliveryChan
	m, ok := e.(*kafka.Message)
	if !ok {
		return fmt.Errorf("unexpected delivery event type %T", e)
	}
	if m.TopicPartition.Error != nil {
		return fmt.Errorf("deliver record event: %w", m.TopicPartition.Error)
	}
	return nil
}

// Close 冲刷未发送消息并关闭底层生产者
func (p *RecordPublisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
