// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"time"

	"github.com/mailtools/go-imap-archive/archive"
	"github.com/mailtools/go-imap-archive/archiver"
	"github.com/mailtools/go-imap-archive/config"
	"github.com/mailtools/go-imap-archive/domain"
	"github.com/mailtools/go-imap-archive/imapconnection"
	"github.com/mailtools/go-imap-archive/log"
	"github.com/mailtools/go-imap-archive/persistence"
	"github.com/mailtools/go-imap-archive/report"

	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	var runLog domain.RunLog
	if len(conf.Database) > 0 {
		p, err := persistence.NewPersistence(conf.Database)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not open run history database")
		}
		defer p.Close()
		runLog = p

		logPreviousRun(runLog, logger)
	}

	imapConn, err := imapconnection.NewImapConnection(conf.Addr(), conf.User, conf.Password)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to imap server")
	}
	defer imapConn.Close()

	store := archive.NewStore(conf.DestinationDir)

	configs := []archiver.ConfigFunc{}
	if conf.DryRun {
		configs = append(configs, archiver.DryRun())
	}
	if conf.ForceAll {
		configs = append(configs, archiver.ForceAll())
	}

	if conf.BatchEnabled {
		configs = append(configs, archiver.BatchSize(conf.BatchSize))
	} else {
		configs = append(configs, archiver.DisableBatching())
	}

	if len(conf.Include) > 0 {
		configs = append(configs, archiver.Include(conf.Include))
	}
	if len(conf.Exclude) > 0 {
		configs = append(configs, archiver.Exclude(conf.Exclude))
	}

	ma, err := archiver.NewMailArchiver(imapConn, store, report.NewLogReporter(), configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not configure archiver")
	}

	logger.WithFields(logrus.Fields{"destination": conf.DestinationDir, "dryrun": conf.DryRun, "forceall": conf.ForceAll}).Info("Archiving mails")
	if conf.DryRun {
		logger.Warn("Skipping all writes due to dry-run")
	}

	started := time.Now()
	results, err := ma.Run()
	if err != nil {
		logger.WithField("error", err).Fatal("Archiving failed")
	}

	if runLog != nil {
		err = runLog.SaveRun(started, time.Now(), conf.DryRun, results)
		if err != nil {
			logger.WithField("error", err).Error("Could not save run history")
		}
	}
}

func logPreviousRun(runLog domain.RunLog, logger *logrus.Logger) {
	previous, err := runLog.RecentRuns(1)
	if err != nil {
		logger.WithField("error", err).Warn("Could not read run history")
		return
	}
	if len(previous) == 0 {
		logger.Info("No previous runs recorded")
		return
	}

	run := previous[0]
	logger.WithFields(logrus.Fields{
		"finished": run.Finished,
		"mailbox":  run.Mailbox,
		"fetched":  run.Fetched,
		"failed":   run.Failed,
		"dryrun":   run.DryRun,
	}).Info("Previous run")
}
