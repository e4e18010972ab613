package notify

import "spg-be/internal/config"

// NewFromConfig picks Kafka when brokers are configured and SMTP otherwise.
// The returned close func releases the Kafka writer and is a no-op for SMTP.
func NewFromConfig(cfg *config.Config) (Sender, func() error) {
	if len(cfg.KafkaBrokers) > 0 {
		p := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		return p, p.Close
	}
	s := NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	return s, func() error { return nil }
}
